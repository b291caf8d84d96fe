package config

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/lexi/internal/assistant"
	"github.com/JaimeStill/lexi/internal/classifications"
)

const (
	EnvAssistantSynthesisDelay = "LEXI_ASSISTANT_SYNTHESIS_DELAY"
	EnvAssistantTypingDelay    = "LEXI_ASSISTANT_TYPING_DELAY"
	EnvAssistantDisclaimer     = "LEXI_ASSISTANT_DISCLAIMER"
)

// AssistantConfig holds the presentation settings of the assistant: the
// artificial latencies and the disclaimer appended to displayed answers.
type AssistantConfig struct {
	SynthesisDelay string `toml:"synthesis_delay"`
	TypingDelay    string `toml:"typing_delay"`
	Disclaimer     string `toml:"disclaimer"`
}

// SynthesisDelayDuration returns SynthesisDelay as a time.Duration.
func (c *AssistantConfig) SynthesisDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.SynthesisDelay)
	return d
}

// TypingDelayDuration returns TypingDelay as a time.Duration.
func (c *AssistantConfig) TypingDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.TypingDelay)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AssistantConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AssistantConfig) Merge(overlay *AssistantConfig) {
	if overlay.SynthesisDelay != "" {
		c.SynthesisDelay = overlay.SynthesisDelay
	}
	if overlay.TypingDelay != "" {
		c.TypingDelay = overlay.TypingDelay
	}
	if overlay.Disclaimer != "" {
		c.Disclaimer = overlay.Disclaimer
	}
}

func (c *AssistantConfig) loadDefaults() {
	if c.SynthesisDelay == "" {
		c.SynthesisDelay = classifications.DefaultSynthesisDelay.String()
	}
	if c.TypingDelay == "" {
		c.TypingDelay = "1s"
	}
	if c.Disclaimer == "" {
		c.Disclaimer = assistant.DefaultDisclaimer
	}
}

func (c *AssistantConfig) loadEnv() {
	if v := os.Getenv(EnvAssistantSynthesisDelay); v != "" {
		c.SynthesisDelay = v
	}
	if v := os.Getenv(EnvAssistantTypingDelay); v != "" {
		c.TypingDelay = v
	}
	if v := os.Getenv(EnvAssistantDisclaimer); v != "" {
		c.Disclaimer = v
	}
}

func (c *AssistantConfig) validate() error {
	if d, err := time.ParseDuration(c.SynthesisDelay); err != nil || d < 0 {
		return fmt.Errorf("invalid synthesis_delay: %q", c.SynthesisDelay)
	}
	if d, err := time.ParseDuration(c.TypingDelay); err != nil || d < 0 {
		return fmt.Errorf("invalid typing_delay: %q", c.TypingDelay)
	}
	return nil
}
