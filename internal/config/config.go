// Package config loads service configuration from TOML files and LEXI_*
// environment variables. Precedence, lowest first: built-in defaults,
// config.toml, config.<LEXI_ENV>.toml, environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/lexi/internal/sessions"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvLexiEnv             = "LEXI_ENV"
	EnvLexiShutdownTimeout = "LEXI_SHUTDOWN_TIMEOUT"
	EnvLexiVersion         = "LEXI_VERSION"
)

var sessionsEnv = &sessions.Env{
	TTL:           "LEXI_SESSIONS_TTL",
	SweepInterval: "LEXI_SESSIONS_SWEEP_INTERVAL",
	MaxSessions:   "LEXI_SESSIONS_MAX_SESSIONS",
}

// Config is the root configuration for the Lexi service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	API             APIConfig       `toml:"api"`
	Assistant       AssistantConfig `toml:"assistant"`
	Sessions        sessions.Config `toml:"sessions"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the LEXI_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvLexiEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config.toml from the working directory when present, applies
// the LEXI_ENV overlay, and finalizes all values.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with an explicit directory for the config files. Missing
// files are skipped; defaults and environment variables then supply values.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{}

	base := dir + string(os.PathSeparator) + BaseConfigFile
	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(dir); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Assistant.Merge(&overlay.Assistant)
	c.Sessions.Merge(&overlay.Sessions)
}

// Finalize applies defaults, environment overrides, and validation to the
// root and every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Assistant.Finalize(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}
	if err := c.Sessions.Finalize(sessionsEnv); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvLexiShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvLexiVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	env := os.Getenv(EnvLexiEnv)
	if env == "" {
		return ""
	}
	path := dir + string(os.PathSeparator) + fmt.Sprintf(OverlayConfigPattern, env)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
