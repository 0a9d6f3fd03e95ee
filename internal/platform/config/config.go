package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName        string
	HTTPPort           string
	PostgresDSN        string
	TokenSecret        string
	TokenTTL           time.Duration
	WorkerPollInterval time.Duration
}

func Load() (Config, error) {
	// A missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "fundflow"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "fundflow-dev-secret"
	}

	return Config{
		ServiceName:        service,
		HTTPPort:           port,
		PostgresDSN:        os.Getenv("POSTGRES_DSN"),
		TokenSecret:        secret,
		TokenTTL:           envDuration("TOKEN_TTL", 24*time.Hour),
		WorkerPollInterval: envDuration("WORKER_POLL_INTERVAL", 2*time.Second),
	}, nil
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
		return parsed
	}
	if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
