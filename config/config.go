package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// SessionTTL is the fixed lifetime of a login session. Sessions are not
// renewed on activity.
const SessionTTL = time.Hour

type Config struct {
	Port          string
	DBPath        string
	SessionSecret []byte
	GinMode       string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "data/directory.db"),
		SessionSecret: []byte(getEnv("SESSION_SECRET", "restaurant_directory_dev_secret")),
		GinMode:       os.Getenv("GIN_MODE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
