package api

import (
	"github.com/JaimeStill/lexi/internal/config"
	"github.com/JaimeStill/lexi/internal/infrastructure"
	"github.com/JaimeStill/lexi/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	MaxPasteSize  int64
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Metrics:   infra.Metrics,
		},
		Pagination:    cfg.API.Pagination,
		MaxPasteSize:  cfg.API.MaxPasteSizeBytes(),
		MaxUploadSize: cfg.API.MaxUploadSizeBytes(),
	}
}
