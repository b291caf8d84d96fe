package middleware

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds CORS policy settings.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// CORSEnv maps CORS config fields to environment variable names.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials string
	MaxAge           string
}

// Finalize applies defaults and environment variable overrides.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites fields from overlay. Booleans always apply; slices and
// MaxAge apply only when set.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	if overlay.Origins != nil {
		c.Origins = overlay.Origins
	}
	if overlay.AllowedMethods != nil {
		c.AllowedMethods = overlay.AllowedMethods
	}
	if overlay.AllowedHeaders != nil {
		c.AllowedHeaders = overlay.AllowedHeaders
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}

func (c *CORSConfig) loadDefaults() {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}
}

func (c *CORSConfig) loadEnv(env *CORSEnv) {
	if v, ok := lookup(env.Enabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = b
		}
	}
	if v, ok := lookup(env.Origins); ok {
		c.Origins = splitList(v)
	}
	if v, ok := lookup(env.AllowedMethods); ok {
		c.AllowedMethods = splitList(v)
	}
	if v, ok := lookup(env.AllowedHeaders); ok {
		c.AllowedHeaders = splitList(v)
	}
	if v, ok := lookup(env.AllowCredentials); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AllowCredentials = b
		}
	}
	if v, ok := lookup(env.MaxAge); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxAge = n
		}
	}
}

// RateLimitConfig holds token bucket settings for per-client request throttling.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	MaxClients        int     `toml:"max_clients"`
}

// RateLimitEnv maps rate limit config fields to environment variable names.
type RateLimitEnv struct {
	Enabled           string
	RequestsPerSecond string
	Burst             string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 10
	}
	if c.Burst == 0 {
		c.Burst = 20
	}
	if c.MaxClients == 0 {
		c.MaxClients = 10000
	}

	if env != nil {
		if v, ok := lookup(env.Enabled); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Enabled = b
			}
		}
		if v, ok := lookup(env.RequestsPerSecond); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.RequestsPerSecond = f
			}
		}
		if v, ok := lookup(env.Burst); ok {
			if n, err := strconv.Atoi(v); err == nil {
				c.Burst = n
			}
		}
	}

	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1")
	}
	return nil
}

// Merge overwrites non-zero fields from overlay. Enabled always applies.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	c.Enabled = overlay.Enabled
	if overlay.RequestsPerSecond != 0 {
		c.RequestsPerSecond = overlay.RequestsPerSecond
	}
	if overlay.Burst != 0 {
		c.Burst = overlay.Burst
	}
	if overlay.MaxClients != 0 {
		c.MaxClients = overlay.MaxClients
	}
}

func lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v := os.Getenv(key)
	return v, v != ""
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
