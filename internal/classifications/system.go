package classifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/lexi/internal/documents"
)

// System defines the public contract for turning pasted text into documents.
type System interface {
	Handler() *Handler

	// Validate applies the paste preconditions: at least MinTextLength
	// trimmed characters and no more than the configured maximum size.
	Validate(raw string) error
	// Classify returns the category of raw and records it.
	Classify(raw string) Category
	// Synthesize produces the document for category after the configured delay.
	Synthesize(ctx context.Context, raw string, category Category) (*documents.Document, error)
	// Analyze validates, classifies, and synthesizes raw in one call.
	Analyze(ctx context.Context, raw string) (*documents.Document, error)
}

// Config parameterizes a classification System.
type Config struct {
	SynthesisDelay time.Duration
	MaxTextSize    int64
}

type classifier struct {
	cfg         Config
	synthesizer *Synthesizer
	metrics     *Metrics
	logger      *slog.Logger
}

// New creates a classification System. m may be nil.
func New(cfg Config, m *Metrics, logger *slog.Logger) System {
	return &classifier{
		cfg:         cfg,
		synthesizer: NewSynthesizer(cfg.SynthesisDelay, WithMetrics(m)),
		metrics:     m,
		logger:      logger.With("system", "classifications"),
	}
}

func (c *classifier) Handler() *Handler {
	return NewHandler(c, c.cfg.MaxTextSize, c.logger)
}

func (c *classifier) Validate(raw string) error {
	return ValidateText(raw, c.cfg.MaxTextSize)
}

func (c *classifier) Classify(raw string) Category {
	category := Classify(raw)
	c.metrics.observeClassification(category)
	return category
}

func (c *classifier) Synthesize(ctx context.Context, raw string, category Category) (*documents.Document, error) {
	doc, err := c.synthesizer.Synthesize(ctx, raw, category)
	if err != nil {
		c.logger.Warn("synthesis abandoned", "category", category, "error", err)
		return nil, err
	}

	c.logger.Info("document synthesized", "id", doc.ID, "category", category, "bytes", len(raw))
	return doc, nil
}

func (c *classifier) Analyze(ctx context.Context, raw string) (*documents.Document, error) {
	if err := c.Validate(raw); err != nil {
		return nil, err
	}
	return c.Synthesize(ctx, raw, c.Classify(raw))
}
