package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, []string{"stdout"}, cfg.Logging.OutputPaths)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":               "9000",
		"HOST":               "127.0.0.1",
		"GIN_MODE":           "debug",
		"SHUTDOWN_TIMEOUT":   "10s",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"LOG_OUTPUT":         "stderr,/var/log/calculator.log",
		"CORS_ALLOW_ORIGINS": "http://a.local,http://b.local",
		"METRICS_ENABLED":    "false",
		"METRICS_PATH":       "/internal/metrics",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, []string{"stderr", "/var/log/calculator.log"}, cfg.Logging.OutputPaths)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

func TestLoadKeepsDefaultsForUnsetVariables(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	expected := Default()
	expected.Server.Port = "8080"
	assert.Equal(t, expected, cfg)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "PORT", "http"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown gin mode", "GIN_MODE", "prod"},
		{"relative metrics path", "METRICS_PATH", "metrics"},
		{"unparseable bool", "LOG_DEV", "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
