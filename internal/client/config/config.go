package config

import "time"

// Config holds runtime settings for the Smart Bill CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API.
//   - StorePath: path of the local sqlite file holding the session.
//   - SessionCheckInterval: how often the background watcher re-checks
//     token expiry.
//   - CloudinaryCloud / CloudinaryPreset: unsigned upload target for
//     product pictures.
//   - LogLevel: minimum level for the structured logger.
type Config struct {
	BaseURL              string
	StorePath            string
	SessionCheckInterval time.Duration
	CloudinaryCloud      string
	CloudinaryPreset     string
	LogLevel             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.StorePath = "smartbill.db"
	c.SessionCheckInterval = 60 * time.Second
	c.CloudinaryCloud = "talk-addictive"
	c.CloudinaryPreset = "cafe-management"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
