package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Navigator NavigatorConfig
	Logging   LogConfig
}

// NavigatorConfig holds tree construction configuration.
type NavigatorConfig struct {
	Root        string   `envconfig:"PN_ROOT" default:"."`
	AutoRefresh bool     `envconfig:"PN_AUTO_REFRESH" default:"false"`
	MaxDepth    int      `envconfig:"PN_MAX_DEPTH" default:"0"`
	MaxFiles    int      `envconfig:"PN_MAX_FILES" default:"0"`
	MaxSubdirs  int      `envconfig:"PN_MAX_SUBDIRS" default:"0"`
	Include     []string `envconfig:"PN_INCLUDE"`
	Exclude     []string `envconfig:"PN_EXCLUDE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"PN_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"PN_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Navigator: NavigatorConfig{
			Root:        ".",
			AutoRefresh: false,
			MaxDepth:    0,
			MaxFiles:    0,
			MaxSubdirs:  0,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
