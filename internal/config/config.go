// Package config loads console configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment is silent.
const (
	DefaultBaseURL = "http://127.0.0.1:8000"
	DefaultTimeout = 15 * time.Second
)

// Config holds everything the console needs at startup.
type Config struct {
	// BaseURL is the root of the college management REST API.
	BaseURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// StateDir is the directory backing the durable token tier.
	StateDir string
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present; missing is fine.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{
		BaseURL: env("CMS_API_BASE_URL", DefaultBaseURL),
		Timeout: DefaultTimeout,
	}

	if raw := os.Getenv("CMS_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse CMS_HTTP_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	cfg.StateDir = os.Getenv("CMS_STATE_DIR")
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "cmsadmin")
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
