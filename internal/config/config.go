package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/utafrali/storefront/pkg/config"
	"github.com/utafrali/storefront/pkg/middleware"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`

	// Redis. An empty address keeps the cart in process memory.
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart persistence
	CartStorageKey string `env:"CART_STORAGE_KEY" envDefault:"storefront:cart"`
	CartTTLHours   int    `env:"CART_TTL_HOURS" envDefault:"0"`

	// Catalog. Empty uses the embedded product list.
	CatalogPath string `env:"CATALOG_PATH" envDefault:""`

	// Kafka. No brokers disables cart events.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Per-client limit on mutating routes. Zero RPS disables it.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
	// CIDRs or addresses of reverse proxies allowed to set X-Forwarded-For.
	// Empty trusts none and limits by connection address.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	Tracing TracingConfig `envPrefix:"OTEL_"`
}

// TracingConfig holds OpenTelemetry settings, read from OTEL_* variables.
type TracingConfig struct {
	Enabled    bool    `env:"ENABLED" envDefault:"false"`
	Endpoint   string  `env:"EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	SampleRate float64 `env:"SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CartTTL returns the cart record expiry. Zero means no expiry.
func (c *Config) CartTTL() time.Duration {
	return time.Duration(c.CartTTLHours) * time.Hour
}

// RedisEnabled reports whether cart state should be kept in Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// KafkaEnabled reports whether cart events should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Proxies parses TrustedProxies.
func (c *Config) Proxies() (middleware.TrustedProxies, error) {
	p, err := middleware.ParseTrustedProxies(c.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	return p, nil
}

// validate rejects out-of-range settings.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartStorageKey == "" {
		return fmt.Errorf("CART_STORAGE_KEY must not be empty")
	}
	if c.CartTTLHours < 0 {
		return fmt.Errorf("CART_TTL_HOURS must not be negative, got %d", c.CartTTLHours)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", c.RedisDB)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when limiting is enabled, got %d", c.RateLimitBurst)
	}
	if _, err := c.Proxies(); err != nil {
		return err
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %v", c.Tracing.SampleRate)
	}
	return nil
}
