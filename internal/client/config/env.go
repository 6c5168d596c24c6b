package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv.
const (
	envBaseURL              = "SMARTBILL_BASE_URL"
	envStorePath            = "SMARTBILL_STORE_PATH"
	envSessionCheckInterval = "SMARTBILL_SESSION_CHECK_INTERVAL"
	envCloudinaryCloud      = "SMARTBILL_CLOUDINARY_CLOUD"
	envCloudinaryPreset     = "SMARTBILL_CLOUDINARY_PRESET"
	envLogLevel             = "SMARTBILL_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the process environment, loading
// a .env file first when one exists in the working directory. Interval
// values use time.ParseDuration syntax; an unparsable interval is ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envStorePath); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv(envSessionCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionCheckInterval = d
		}
	}
	if v := os.Getenv(envCloudinaryCloud); v != "" {
		cfg.CloudinaryCloud = v
	}
	if v := os.Getenv(envCloudinaryPreset); v != "" {
		cfg.CloudinaryPreset = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
