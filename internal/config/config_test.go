package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "storefront:cart", cfg.CartStorageKey)
	assert.Equal(t, time.Duration(0), cfg.CartTTL())
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.KafkaEnabled())
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Tracing.Endpoint)
	assert.InDelta(t, 1.0, cfg.Tracing.SampleRate, 1e-9)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_PORT", "9000")
	t.Setenv("REDIS_ADDR", "redis.prod:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CART_STORAGE_KEY", "shop:cart")
	t.Setenv("CART_TTL_HOURS", "48")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com,https://admin.example.com")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SAMPLE_RATE", "0.25")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "redis.prod:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "shop:cart", cfg.CartStorageKey)
	assert.Equal(t, 48*time.Hour, cfg.CartTTL())
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
	assert.True(t, cfg.Tracing.Enabled)
	assert.InDelta(t, 0.25, cfg.Tracing.SampleRate, 1e-9)
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_PORT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_NegativeTTL(t *testing.T) {
	t.Setenv("CART_TTL_HOURS", "-1")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "CART_TTL_HOURS")
}

func TestLoad_InvalidOTELSampleRate(t *testing.T) {
	t.Setenv("OTEL_SAMPLE_RATE", "2.0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OTEL_SAMPLE_RATE must be between 0.0 and 1.0")
}

func TestLoad_UnparsableValue(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "load storefront config")
}

func TestLoad_RateLimitDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.InDelta(t, 20.0, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoad_RateLimitDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("RATE_LIMIT_BURST", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Zero(t, cfg.RateLimitRPS)
}

func TestLoad_InvalidRateLimit(t *testing.T) {
	tests := []struct {
		name  string
		rps   string
		burst string
		want  string
	}{
		{name: "negative rps", rps: "-1", burst: "10", want: "RATE_LIMIT_RPS"},
		{name: "zero burst", rps: "5", burst: "0", want: "RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_RPS", tt.rps)
			t.Setenv("RATE_LIMIT_BURST", tt.burst)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")

	cfg, err := Load()
	require.NoError(t, err)

	proxies, err := cfg.Proxies()
	require.NoError(t, err)
	assert.Len(t, proxies, 2)
}

func TestLoad_InvalidTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/99")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRUSTED_PROXIES")
}
