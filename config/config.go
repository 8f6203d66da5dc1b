package config

import (
	"os"
	"strconv"
	"time"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	ListenAddr string
	// DatabaseURL selects the Postgres dataset source when set; otherwise the
	// three CSV files under DataDir are loaded.
	DatabaseURL     string
	DataDir         string
	RefreshInterval time.Duration
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from environment variables, applying defaults.
func Load() {
	AppConfig = Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":3000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		RefreshInterval: getEnvDuration("REFRESH_INTERVAL_SECONDS", 30),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
