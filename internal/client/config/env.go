package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig is a DTO for the environment layer. Only set variables overlay
// the current config.
type envConfig struct {
	APIBaseURL             string `env:"AUM_API_URL"`
	OnlineCheckIntervalSec int    `env:"AUM_ONLINE_CHECK_INTERVAL"`
	DatabasePath           string `env:"AUM_DB_PATH"`
	LogLevel               string `env:"AUM_LOG_LEVEL"`
}

// parseEnv overlays cfg with values from AUM_* environment variables.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process(context.Background(), &ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.OnlineCheckIntervalSec > 0 {
		cfg.OnlineCheckInterval = time.Duration(ec.OnlineCheckIntervalSec) * time.Second
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
