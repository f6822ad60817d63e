package config

import (
	"fmt"
	"os"
	"strings"
)

// Config collects every environment knob the service reads. DATABASE_URL and
// JWT_SECRET have no sane default and must be present.
type Config struct {
	DatabaseURL   string
	AppHost       string
	JWTSecret     string
	UploadDir     string
	PublicBaseURL string
	MigrationsDir string
	CORSOrigins   []string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AppHost:       getEnv("APP_HOST", ":8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "./migrations"),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
