package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/decisiongrid/internal/config"
	"github.com/specialistvlad/decisiongrid/internal/ctxlog"
	"github.com/specialistvlad/decisiongrid/internal/registry"
	"github.com/specialistvlad/decisiongrid/internal/telemetry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	settings *config.Settings
	gatherer *prometheus.Registry
	metrics  *telemetry.Metrics
}

// NewApp is the constructor for the main application. Responses go to outW
// and logs to logW. With no modules the bundled ones are registered.
func NewApp(outW, logW io.Writer, settings *config.Settings, modules ...registry.Module) *App {
	logger := newLogger(settings.Log, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.NewWith(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	// A broken registry is a programming error, not a user one.
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	gatherer := prometheus.NewRegistry()
	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		settings: settings,
		gatherer: gatherer,
		metrics:  telemetry.NewMetrics(gatherer),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
