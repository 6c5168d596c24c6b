// Package config loads runtime configuration for the Smart Bill CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with a .env file loaded first
//     when present.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-s string   path of the local session store
//	-i int      session check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "store_path": "smartbill.db",
//	  "session_check_interval": "60s",
//	  "cloudinary_cloud": "talk-addictive",
//	  "cloudinary_preset": "cafe-management",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — the resolved runtime settings
//   - func LoadConfig() *Config       — defaults, then JSON, env, flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
