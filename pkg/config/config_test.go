package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redisSettings struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	DB   int    `env:"DB" envDefault:"0"`
}

type serviceConfig struct {
	Port    int           `env:"PORT" envDefault:"8080"`
	Origins []string      `env:"ORIGINS" envDefault:"*" envSeparator:","`
	Debug   bool          `env:"DEBUG" envDefault:"false"`
	Redis   redisSettings `envPrefix:"REDIS_"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg serviceConfig
	require.NoError(t, Load(&cfg, WithEnvironment(map[string]string{})))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.Origins)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_FromEnvironmentMap(t *testing.T) {
	var cfg serviceConfig
	err := Load(&cfg, WithEnvironment(map[string]string{
		"PORT":       "9090",
		"ORIGINS":    "https://a.example,https://b.example",
		"REDIS_ADDR": "redis:6380",
		"REDIS_DB":   "3",
	}))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_ProcessEnvironmentWithPrefix(t *testing.T) {
	t.Setenv("SHOP_PORT", "7070")
	t.Setenv("SHOP_DEBUG", "true")
	t.Setenv("SHOP_REDIS_ADDR", "cache:6379")

	var cfg serviceConfig
	require.NoError(t, Load(&cfg, WithPrefix("SHOP_")))

	assert.Equal(t, 7070, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoad_InvalidType(t *testing.T) {
	var cfg serviceConfig
	err := Load(&cfg, WithEnvironment(map[string]string{"PORT": "not-a-number"}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
