package app

import (
	"errors"
	"fmt"
	"log/slog"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Expressions []string // evaluated in order
	List        bool     // print the registered functions

	LogFormat string
	LogLevel  string     // as given, e.g. "debug" or "warn"
	Level     slog.Level // LogLevel parsed by NewConfig
}

var validLogFormats = map[string]bool{"text": true, "json": true}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Expressions) == 0 && !cfg.List {
		return nil, errors.New("at least one expression is required unless listing functions")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !validLogFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if err := cfg.Level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.Expressions = append([]string(nil), cfg.Expressions...)
	return &cfg, nil
}
