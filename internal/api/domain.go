package api

import (
	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/config"
	"github.com/JaimeStill/lexi/internal/documents"
	"github.com/JaimeStill/lexi/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents       documents.System
	Classifications classifications.System
	Assistant       assistant.System
	Sessions        sessions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	factory := runtime.Metrics.Factory()

	docsSystem := documents.New(runtime.Logger)

	classificationsSystem := classifications.New(
		classifications.Config{
			SynthesisDelay: cfg.Assistant.SynthesisDelayDuration(),
			MaxTextSize:    runtime.MaxPasteSize,
		},
		classifications.NewMetrics(factory),
		runtime.Logger,
	)

	assistantSystem := assistant.New(
		docsSystem,
		cfg.Assistant.Disclaimer,
		assistant.NewMetrics(factory),
		runtime.Logger,
	)

	sessionsSystem := sessions.New(&cfg.Sessions, sessions.Deps{
		Documents:       docsSystem,
		Classifications: classificationsSystem,
		Assistant:       assistantSystem,
		Pagination:      runtime.Pagination,
		MaxPasteSize:    runtime.MaxPasteSize,
		MaxUploadSize:   runtime.MaxUploadSize,
		Metrics:         sessions.NewMetrics(factory),
		Logger:          runtime.Logger,
	})

	return &Domain{
		Documents:       docsSystem,
		Classifications: classificationsSystem,
		Assistant:       assistantSystem,
		Sessions:        sessionsSystem,
	}
}
