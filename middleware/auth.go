package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"restaurant-directory-api/models"
	"restaurant-directory-api/stores"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// SessionClaims wrap a server-side session id. The token alone is not
// enough to pass the guard: the referenced session row must still exist and
// be unexpired, so logout kills a token before its exp claim does.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      int    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a token binding the cookie to a session row.
func GenerateSessionToken(secret []byte, user *models.User, sessionID string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken verifies the signature and expiry of a session token.
func ParseSessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// RequireLogin resolves the session cookie to a live session and injects the
// caller's identity into the context. Anything short of a valid, unexpired,
// still-stored session short-circuits to the login prompt.
func RequireLogin(secret []byte, sessions stores.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.LoginPrompt})
			c.Abort()
			return
		}

		claims, err := ParseSessionToken(secret, tokenStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.LoginPrompt})
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil || time.Now().After(session.ExpiresAt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.LoginPrompt})
			c.Abort()
			return
		}

		c.Set("userID", session.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin enforces the admin role on routes behind RequireLogin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists || roleVal.(int) != models.RoleAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": models.InsufficientPrivileges})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the caller's user id from the context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}
