package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/campuswell/pulse/pkg/formatting"
	"github.com/campuswell/pulse/pkg/middleware"
	"github.com/campuswell/pulse/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PULSE_CORS_ENABLED",
	Origins:          "PULSE_CORS_ORIGINS",
	AllowedMethods:   "PULSE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PULSE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PULSE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PULSE_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPerPage: "PULSE_PAGINATION_DEFAULT_PER_PAGE",
	MaxPerPage:     "PULSE_PAGINATION_MAX_PER_PAGE",
}

// APIConfig holds API routing, request sizing, CORS, and pagination settings.
type APIConfig struct {
	BasePath           string                `toml:"base_path"`
	MaxRequestSize     string                `toml:"max_request_size"`
	MaxRecommendations int                   `toml:"max_recommendations"`
	CORS               middleware.CORSConfig `toml:"cors"`
	Pagination         pagination.Config     `toml:"pagination"`
}

// MaxRequestSizeBytes returns the submission body size limit in bytes.
func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
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
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}
	if overlay.MaxRecommendations != 0 {
		c.MaxRecommendations = overlay.MaxRecommendations
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
	if c.MaxRecommendations == 0 {
		c.MaxRecommendations = 15
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("PULSE_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("PULSE_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
	if v := os.Getenv("PULSE_API_MAX_RECOMMENDATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRecommendations = n
		}
	}
}

func (c *APIConfig) validate() error {
	if c.MaxRecommendations < 1 {
		return fmt.Errorf("max_recommendations must be positive")
	}
	if _, err := formatting.ParseBytes(c.MaxRequestSize); err != nil {
		return fmt.Errorf("invalid max_request_size: %w", err)
	}
	return nil
}
