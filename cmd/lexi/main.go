// Package main implements the lexi CLI: browse the sample agreements, classify
// and synthesize pasted text, and ask the assistant questions from the terminal.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/classifications"
	"github.com/JaimeStill/lexi/internal/config"
	"github.com/JaimeStill/lexi/internal/documents"
)

var (
	// version is overridden at build time with -ldflags.
	version = "dev"
	verbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lexi",
	Short: "Plain-language legal document assistant",
	Long: `lexi explains legal documents in plain language. It ships with a sample
loan agreement and rent agreement, recognizes pasted terms of service, and
answers common questions with citations to the relevant clause.

Answers are keyword based and are not legal advice.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log informational messages to stderr")
}

// app holds the systems a command needs. It is built per invocation from the
// loaded configuration.
type app struct {
	cfg             *config.Config
	logger          *slog.Logger
	documents       documents.System
	classifications classifications.System
	assistant       assistant.System
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr())
	docs := documents.New(logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		documents: docs,
		classifications: classifications.New(
			classifications.Config{
				SynthesisDelay: cfg.Assistant.SynthesisDelayDuration(),
				MaxTextSize:    cfg.API.MaxPasteSizeBytes(),
			},
			nil,
			logger,
		),
		assistant: assistant.New(docs, cfg.Assistant.Disclaimer, nil, logger),
	}, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
