package app

import (
	"io"
	"log/slog"

	"github.com/vk/funcs/internal/funcs"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *funcs.Registry
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW. When no modules are given the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...funcs.Module) *App {
	logger := newLogger(cfg.Level, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := funcs.New(funcs.WithLogger(logger))
	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	reg.Register(modules...)
	logger.Debug("All Go modules registered.", "modules", len(modules), "functions", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *funcs.Registry {
	return a.registry
}
