package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// GridPath points at a .hcl grid file or a directory of them. Empty
	// means the built-in demo grid.
	GridPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults for unset ambient fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
