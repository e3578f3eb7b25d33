package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env           string `env:"ENV" envDefault:"development"`
	Port          string `env:"PORT" envDefault:"8080"`
	DBURL         string `env:"DB_URL"`
	TokenSecret   string `env:"TOKEN_SECRET"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"168"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"12"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// StrictSecret makes a missing TOKEN_SECRET fatal at startup instead of
	// falling back to the built-in development secret.
	StrictSecret bool `env:"STRICT_SECRET" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("missing required environment variable: DB_URL")
	}
	if cfg.TokenTTLHours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be positive, got %d", cfg.TokenTTLHours)
	}
	return cfg, nil
}

// TokenTTL returns the configured session lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}
