package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by the client. A .env file in the
// working directory is merged in first; real environment variables win
// over the file.
const (
	envAPIBaseURL     = "NOTECOMPASS_API_URL"
	envRequestTimeout = "NOTECOMPASS_TIMEOUT"
	envSessionDBPath  = "NOTECOMPASS_SESSION_DB"
)

// parseEnv overlays Config with values from the environment. Missing
// variables leave the current value untouched; an unparsable timeout is
// ignored rather than fatal.
func parseEnv(cfg *Config) {
	// Absence of a .env file is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
}
