package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/config"
	"restaurant-directory-api/middleware"
	"restaurant-directory-api/models"
	"restaurant-directory-api/stores"
)

// failureCookie briefly carries the reason of a failed login across the
// redirect to /login_failed.
const failureCookie = "login_messages"

type AuthHandler struct {
	users    stores.UserStore
	sessions stores.SessionStore
	secret   []byte
}

func NewAuthHandler(users stores.UserStore, sessions stores.SessionStore, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, secret: secret}
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Image    string `json:"image" form:"image" binding:"required,uri"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Register creates a new user account with the user role.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperror.Validation(bindingMessage(err)))
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.RoleUser,
		Image:    req.Image,
	}
	if err := h.users.Register(c.Request.Context(), &user, req.Password); err != nil {
		fail(c, err)
		return
	}
	ok(c, "User registered successfully")
}

// Login checks the credentials and establishes a server-side session. A
// failed check redirects to /login_failed with the reason carried along.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperror.Validation(bindingMessage(err)))
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.SetCookie(failureCookie, models.BadCredentials, 60, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login_failed")
		return
	}

	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(config.SessionTTL),
	}
	if err := h.sessions.Create(c.Request.Context(), &session); err != nil {
		fail(c, err)
		return
	}

	token, err := middleware.GenerateSessionToken(h.secret, user, session.ID, session.ExpiresAt)
	if err != nil {
		fail(c, apperror.Store(models.FailureResponse))
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(config.SessionTTL.Seconds()), "/", "", false, true)
	ok(c, "Logged in successfully")
}

// LoginMessage prompts an unauthenticated caller to log in.
func (h *AuthHandler) LoginMessage(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": models.LoginPrompt})
}

// LoginFailed reports the messages of the login attempt that led here.
func (h *AuthHandler) LoginFailed(c *gin.Context) {
	messages := []string{}
	if msg, err := c.Cookie(failureCookie); err == nil {
		messages = append(messages, msg)
		c.SetCookie(failureCookie, "", -1, "/", "", false, true)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": messages})
}

// Logout tears down the caller's session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if tokenStr, err := c.Cookie(middleware.SessionCookie); err == nil {
		if claims, err := middleware.ParseSessionToken(h.secret, tokenStr); err == nil {
			if err := h.sessions.Delete(c.Request.Context(), claims.SessionID); err != nil {
				fail(c, err)
				return
			}
		}
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	}
	ok(c, "You have been logged out")
}
