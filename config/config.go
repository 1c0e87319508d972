package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DSN         string
	JWTSecret   string
	Development bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		DSN:         getEnv("DSN", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		Development: getEnv("APP_ENV", "development") != "production",
	}

	if cfg.DSN == "" {
		return nil, fmt.Errorf("DSN is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
