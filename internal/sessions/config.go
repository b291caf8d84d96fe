package sessions

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config bounds how many viewing sessions are kept and for how long.
type Config struct {
	TTL           string `toml:"ttl"`
	SweepInterval string `toml:"sweep_interval"`
	MaxSessions   int    `toml:"max_sessions"`
}

// Env maps session config fields to environment variable names.
type Env struct {
	TTL           string
	SweepInterval string
	MaxSessions   string
}

// TTLDuration returns TTL as a time.Duration.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.MaxSessions != 0 {
		c.MaxSessions = overlay.MaxSessions
	}
}

func (c *Config) loadDefaults() {
	if c.TTL == "" {
		c.TTL = "30m"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "1m"
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = 1000
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.TTL != "" {
		if v := os.Getenv(env.TTL); v != "" {
			c.TTL = v
		}
	}
	if env.SweepInterval != "" {
		if v := os.Getenv(env.SweepInterval); v != "" {
			c.SweepInterval = v
		}
	}
	if env.MaxSessions != "" {
		if v := os.Getenv(env.MaxSessions); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxSessions = n
			}
		}
	}
}

func (c *Config) validate() error {
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	sweep, err := time.ParseDuration(c.SweepInterval)
	if err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	if sweep <= 0 {
		return fmt.Errorf("sweep_interval must be positive")
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("max_sessions cannot be negative")
	}
	return nil
}
