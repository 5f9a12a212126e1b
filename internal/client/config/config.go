// Package config loads runtime settings for the welfare client CLI.
package config

import "time"

// Config holds the runtime settings.
//
// Fields:
//   - APIBaseURL: base URL of the welfare backend, e.g. "https://api.example.org".
//   - OnlineCheckInterval: how often the connectivity watcher probes.
//   - DatabasePath: path of the local sqlite store holding the session.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	APIBaseURL          string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabasePath = "aum.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
