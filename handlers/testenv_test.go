package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-directory-api/handlers"
	"restaurant-directory-api/models"
	"restaurant-directory-api/routes"
	"restaurant-directory-api/stores"
)

var testSecret = []byte("test_session_secret")

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

// newTestEnv builds the full router over a fresh in-memory database with the
// startup fixtures (admin user, Madinah and Jeddah) seeded.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := stores.Open(":memory:")
	require.NoError(t, err)

	users := stores.NewUserStore(db)
	cities := stores.NewCityStore(db)
	restaurants := stores.NewRestaurantStore(db)
	sessions := stores.NewSessionStore(db)
	stores.Seed(context.Background(), users, cities)

	r := gin.New()
	routes.SetupRoutes(r,
		handlers.NewAuthHandler(users, sessions, testSecret),
		handlers.NewRestaurantHandler(restaurants),
		testSecret, sessions)

	return &testEnv{router: r, db: db}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login authenticates and returns the session cookie.
func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := e.do(t, http.MethodPost, "/login", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code, "login should succeed: %s", w.Body.String())
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

// register creates a regular user account through the API.
func (e *testEnv) register(t *testing.T, username, password, email string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/register", gin.H{
		"username": username,
		"password": password,
		"email":    email,
		"image":    "https://example.com/avatar.png",
	})
	require.Equal(t, http.StatusOK, w.Code, "register should succeed: %s", w.Body.String())
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (e *testEnv) cityID(t *testing.T, name string) uint {
	t.Helper()
	var city models.City
	require.NoError(t, e.db.First(&city, "name = ?", name).Error)
	return city.ID
}
