package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-directory-api/handlers"
	"restaurant-directory-api/middleware"
	"restaurant-directory-api/stores"
)

func SetupRoutes(r *gin.Engine, auth *handlers.AuthHandler, restaurants *handlers.RestaurantHandler, secret []byte, sessions stores.SessionStore) {
	// ── Auth ───────────────────────────────────────────────────────
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/login_message", auth.LoginMessage)
	r.GET("/login_failed", auth.LoginFailed)
	r.POST("/logout", auth.Logout)

	// ── Restaurant queries (any logged-in user) ────────────────────
	queries := r.Group("/")
	queries.Use(middleware.RequireLogin(secret, sessions))
	{
		queries.GET("/nearest_restaurants", restaurants.Nearest)
		queries.GET("/search_restaurants", restaurants.Search)
		queries.GET("/restaurant_statistics", restaurants.Statistics)
	}

	// ── Restaurant management (admin only) ─────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.RequireLogin(secret, sessions), middleware.RequireAdmin())
	{
		admin.POST("/restaurant", restaurants.Add)
		admin.PUT("/restaurant", restaurants.Edit)
		admin.DELETE("/restaurant", restaurants.Delete)
	}
}
