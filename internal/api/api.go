// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/lexi/internal/config"
	"github.com/JaimeStill/lexi/internal/infrastructure"
	"github.com/JaimeStill/lexi/pkg/middleware"
	"github.com/JaimeStill/lexi/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Session sweeping is registered with the infrastructure lifecycle.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(cfg, runtime)

	domain.Sessions.Start(runtime.Lifecycle)

	mux := http.NewServeMux()
	registerRoutes(mux, domain)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Metrics("api", runtime.Metrics.HTTPRequests, runtime.Metrics.HTTPDuration))
	m.Use(middleware.RateLimit(&cfg.API.RateLimit))

	return m, nil
}
