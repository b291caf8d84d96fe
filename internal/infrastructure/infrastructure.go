// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every domain system shares: lifecycle
// coordination, logging, and the metrics registry.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/lexi/internal/config"
	"github.com/JaimeStill/lexi/pkg/lifecycle"
	"github.com/JaimeStill/lexi/pkg/metrics"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	if cfg == nil {
		return nil, fmt.Errorf("infrastructure: nil config")
	}
	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger.With("env", cfg.Env()),
		Metrics:   metrics.New(),
	}, nil
}

// Start registers infrastructure startup checks with the lifecycle coordinator.
// The metrics registry is gathered once so inconsistent collectors fail
// readiness instead of the first scrape.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() error {
		if _, err := i.Metrics.Registry().Gather(); err != nil {
			return fmt.Errorf("metrics registry: %w", err)
		}
		return nil
	})
	return nil
}
