package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logging LogConfig
	CORS    CORSConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" validate:"required,numeric"`
	Host            string        `envconfig:"HOST"`
	Mode            string        `envconfig:"GIN_MODE" validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string   `envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Development bool     `envconfig:"LOG_DEV"`
	OutputPaths []string `envconfig:"LOG_OUTPUT" validate:"min=1,dive,required"`
}

// CORSConfig holds the allowed browser origins.
type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" validate:"min=1,dive,required"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED"`
	Path    string `envconfig:"METRICS_PATH" validate:"startswith=/"`
}

var validate = validator.New()

// Load overlays environment variables on Default. Unset variables keep the default.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "3000",
			Host:            "0.0.0.0",
			Mode:            "release",
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
			OutputPaths: []string{"stdout"},
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}
