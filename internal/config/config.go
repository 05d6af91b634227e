// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server needs to run.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite database file.
	DBPath string `env:"DB_PATH" envDefault:"./data/kasrt.db"`

	// JWTSecret signs bearer tokens. Required; there is no safe default.
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Metrics enables the /metrics prometheus endpoint.
	Metrics bool `env:"METRICS" envDefault:"true"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	return nil
}

// Addr returns the listen address, e.g. ":8080".
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
