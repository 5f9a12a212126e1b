package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/actionunit/aumcli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The probe
// interval is expressed in whole seconds.
type JsonConfig struct {
	APIBaseURL             string `json:"api_base_url"`
	OnlineCheckIntervalSec int    `json:"online_check_interval_sec"`
	DatabasePath           string `json:"database_path"`
	LogLevel               string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flags. Missing flag means no JSON layer. Read or unmarshal errors
// panic, matching the other config layers.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.OnlineCheckIntervalSec > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckIntervalSec) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
