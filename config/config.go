// config.go - Handles configuration for the project

package config

import (
	"os"
)

type Config struct {
	DBPath string // Path to the SQLite database file
	Port   string // Port the HTTP server listens on
}

// Load reads config from environment variables or uses defaults.
func Load() *Config {
	return &Config{
		DBPath: getEnv("DB_PATH", "climate_change.db"),
		Port:   getEnv("PORT", "5001"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
