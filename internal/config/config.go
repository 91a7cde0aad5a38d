package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	Env     string
	GinMode string
}

// Load reads an optional .env file and falls back to system env variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on system env variables")
	}

	return &Config{
		Port:    getEnv("PORT", "8000"),
		Env:     getEnv("ENV", "development"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
