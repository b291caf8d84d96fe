package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/lexi/pkg/formatting"
	"github.com/JaimeStill/lexi/pkg/middleware"
	"github.com/JaimeStill/lexi/pkg/pagination"
)

const (
	EnvAPIBasePath      = "LEXI_API_BASE_PATH"
	EnvAPIMaxPasteSize  = "LEXI_API_MAX_PASTE_SIZE"
	EnvAPIMaxUploadSize = "LEXI_API_MAX_UPLOAD_SIZE"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LEXI_CORS_ENABLED",
	Origins:          "LEXI_CORS_ORIGINS",
	AllowedMethods:   "LEXI_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LEXI_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LEXI_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LEXI_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "LEXI_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "LEXI_PAGINATION_MAX_PAGE_SIZE",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled:           "LEXI_RATE_LIMIT_ENABLED",
	RequestsPerSecond: "LEXI_RATE_LIMIT_REQUESTS_PER_SECOND",
	Burst:             "LEXI_RATE_LIMIT_BURST",
}

// APIConfig holds API routing, request limits, and the nested middleware and
// pagination settings.
type APIConfig struct {
	BasePath      string                     `toml:"base_path"`
	MaxPasteSize  string                     `toml:"max_paste_size"`
	MaxUploadSize string                     `toml:"max_upload_size"`
	CORS          middleware.CORSConfig      `toml:"cors"`
	Pagination    pagination.Config          `toml:"pagination"`
	RateLimit     middleware.RateLimitConfig `toml:"rate_limit"`
}

// MaxPasteSizeBytes returns MaxPasteSize as a byte count.
func (c *APIConfig) MaxPasteSizeBytes() int64 {
	n, _ := formatting.ParseBytes(c.MaxPasteSize)
	return n
}

// MaxUploadSizeBytes returns MaxUploadSize as a byte count.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	n, _ := formatting.ParseBytes(c.MaxUploadSize)
	return n
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxPasteSize != "" {
		c.MaxPasteSize = overlay.MaxPasteSize
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.RateLimit.Merge(&overlay.RateLimit)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxPasteSize == "" {
		c.MaxPasteSize = "1MB"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxPasteSize); v != "" {
		c.MaxPasteSize = v
	}
	if v := os.Getenv(EnvAPIMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("base_path must be a single segment starting with /: %q", c.BasePath)
	}
	if n, err := formatting.ParseBytes(c.MaxPasteSize); err != nil || n <= 0 {
		return fmt.Errorf("invalid max_paste_size: %q", c.MaxPasteSize)
	}
	if n, err := formatting.ParseBytes(c.MaxUploadSize); err != nil || n <= 0 {
		return fmt.Errorf("invalid max_upload_size: %q", c.MaxUploadSize)
	}
	return nil
}
