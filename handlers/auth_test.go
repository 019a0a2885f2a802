package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-directory-api/models"
)

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing username", gin.H{"password": "pw", "email": "a@b.com", "image": "https://x.com/a.png"}},
		{"missing password", gin.H{"username": "u1", "email": "a@b.com", "image": "https://x.com/a.png"}},
		{"missing email", gin.H{"username": "u1", "password": "pw", "image": "https://x.com/a.png"}},
		{"malformed email", gin.H{"username": "u1", "password": "pw", "email": "not-an-email", "image": "https://x.com/a.png"}},
		{"malformed image uri", gin.H{"username": "u1", "password": "pw", "email": "a@b.com", "image": "not a uri"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w).Error)
		})
	}

	var count int64
	env.db.Model(&models.User{}).Where("username = ?", "u1").Count(&count)
	assert.Zero(t, count, "no user should be created by rejected registrations")
}

func TestRegisterDuplicates(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "zain", "secret", "zain@example.com")

	w := env.do(t, http.MethodPost, "/register", gin.H{
		"username": "zain", "password": "other", "email": "other@example.com",
		"image": "https://example.com/a.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "duplicate username is rejected")

	w = env.do(t, http.MethodPost, "/register", gin.H{
		"username": "other", "password": "other", "email": "zain@example.com",
		"image": "https://example.com/a.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "duplicate email is rejected")
}

func TestLoginAndLogout(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin", "admin")

	w := env.do(t, http.MethodGet, "/restaurant_statistics", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// The cookie still holds a signed, unexpired token, but the session row
	// is gone.
	w = env.do(t, http.MethodGet, "/restaurant_statistics", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), models.LoginPrompt)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/login", gin.H{"username": "admin", "password": "wrong"})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login_failed", w.Header().Get("Location"))

	var failure *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "login_messages" {
			failure = cookie
		}
	}
	require.NotNil(t, failure, "failed login should carry its message")

	w = env.do(t, http.MethodGet, "/login_failed", nil, failure)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password or username is incorrect")
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/login", gin.H{"username": "ghost", "password": "pw"})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLoginMessage(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/login_message", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), models.LoginPrompt)
}

func TestGuardWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/nearest_restaurants?location=1&location=2", "/search_restaurants?text=Al", "/restaurant_statistics"} {
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), models.LoginPrompt, path)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisteredUserCanLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "sara", "hunter2", "sara@example.com")
	cookie := env.login(t, "sara", "hunter2")

	w := env.do(t, http.MethodGet, "/restaurant_statistics", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
}
