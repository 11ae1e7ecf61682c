package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port     int           `env:"TEST_PORT" envDefault:"3000"`
	BaseURL  string        `env:"TEST_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	Timeout  time.Duration `env:"TEST_TIMEOUT" envDefault:"30s"`
	UseMock  bool          `env:"TEST_USE_MOCK" envDefault:"false"`
	LogLevel string        `env:"TEST_LOG_LEVEL" envDefault:"info"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.UseMock)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_BASE_URL", "http://api.internal:9000")
	t.Setenv("TEST_USE_MOCK", "true")

	var cfg testConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://api.internal:9000", cfg.BaseURL)
	assert.True(t, cfg.UseMock)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg testConfig
	err := Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
