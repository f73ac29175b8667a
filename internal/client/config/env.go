package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence over it, which is godotenv's default behavior.
//
// Recognized variables:
//
//	ADMIN_API_BASE_URL
//	ADMIN_REQUEST_TIMEOUT  (seconds)
//	ADMIN_LOG_FILE
//	ADMIN_LOG_LEVEL
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADMIN_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ADMIN_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("ADMIN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("ADMIN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
