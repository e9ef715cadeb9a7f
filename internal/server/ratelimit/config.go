package ratelimit

import (
	"net/http"
	"time"

	"github.com/jonathan/ats-scorer/internal/config"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // exact path, or a prefix when it ends with "/"
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// FromConfig builds a limiter configuration from the service settings.
func FromConfig(cfg config.RateLimitConfig) *Config {
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    cfg.RequestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    cfg.Burst,
		CleanupInterval: 10 * time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(cfg),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific configurations.
// Recalculation hits the database, so it gets half the default rate.
func DefaultEndpointConfigs(cfg config.RateLimitConfig) []EndpointConfig {
	return []EndpointConfig{
		{
			Path:   "/recalculate-score",
			Method: http.MethodPost,
			Limit:  max(1, cfg.RequestsPerMinute/2),
			Window: time.Minute,
			Burst:  max(1, cfg.Burst/2),
		},
	}
}
