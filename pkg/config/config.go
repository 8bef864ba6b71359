package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAllowedOrigins are the frontends allowed to call the API when
// ALLOWED_ORIGINS is not set.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:8000",
	"https://kisxo.github.io",
	"https://magicminute.online",
}

// Config holds application configuration
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENV" envDefault:"development"`
	// DatabaseURL is either a SQLite file path or a postgres:// URL
	DatabaseURL string `env:"DATABASE_URL" envDefault:"database.db"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Security configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	TrustedProxies string `env:"TRUSTED_PROXIES"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Tracing
	OTelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	OTelServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"ita-api"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLER_RATIO" envDefault:"1"`
}

// New creates a new configuration instance from environment variables
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return append([]string(nil), DefaultAllowedOrigins...)
	}
	return splitList(c.AllowedOrigins)
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	if c.TrustedProxies == "" {
		return nil
	}
	return splitList(c.TrustedProxies)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		// trailing slashes never match a browser Origin header
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
