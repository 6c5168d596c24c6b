package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Venkatesh1410/smartbill/internal/flagx"
	"github.com/Venkatesh1410/smartbill/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so intervals can be strings like "60s" or integer
// nanoseconds. Values are copied into the runtime Config after parsing;
// absent fields leave the earlier value in place.
type JsonConfig struct {
	BaseURL              string          `json:"base_url"`
	StorePath            string          `json:"store_path"`
	SessionCheckInterval *timex.Duration `json:"session_check_interval"`
	CloudinaryCloud      string          `json:"cloudinary_cloud"`
	CloudinaryPreset     string          `json:"cloudinary_preset"`
	LogLevel             string          `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. No flag, no file load. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = time.Duration(jc.SessionCheckInterval.Duration)
	}
	if jc.CloudinaryCloud != "" {
		cfg.CloudinaryCloud = jc.CloudinaryCloud
	}
	if jc.CloudinaryPreset != "" {
		cfg.CloudinaryPreset = jc.CloudinaryPreset
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
