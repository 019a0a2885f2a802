package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"restaurant-directory-api/config"
	"restaurant-directory-api/handlers"
	"restaurant-directory-api/routes"
	"restaurant-directory-api/stores"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("starting restaurant directory API service")

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := stores.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}

	users := stores.NewUserStore(db)
	cities := stores.NewCityStore(db)
	restaurants := stores.NewRestaurantStore(db)
	sessions := stores.NewSessionStore(db)

	// Seed the system admin and the default cities; reruns are no-ops.
	stores.Seed(context.Background(), users, cities)

	r := gin.Default()
	authHandler := handlers.NewAuthHandler(users, sessions, cfg.SessionSecret)
	restaurantHandler := handlers.NewRestaurantHandler(restaurants)
	routes.SetupRoutes(r, authHandler, restaurantHandler, cfg.SessionSecret, sessions)

	logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
