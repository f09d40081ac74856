package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // root document, or a directory of config files

	OutputFormat string // "json" or "yaml"
	LogFormat    string
	LogLevel     string
}

// NewConfig validates a Config and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
	switch cfg.OutputFormat {
	case "json", "yaml":
		// valid
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'json' or 'yaml'", cfg.OutputFormat)
	}

	return &cfg, nil
}
