// Package config loads console settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr          string        `env:"APP_ADDR" envDefault:"127.0.0.1:8080"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"web3admin.db"`
	APIBaseURL    string        `env:"API_BASE_URL" envDefault:"http://localhost:3001"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"dev-insecure-secret-change-me"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`
	LoginPerMin   int           `env:"LOGIN_RATE" envDefault:"10"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LoginPerMin <= 0 {
		return Config{}, fmt.Errorf("LOGIN_RATE must be positive, got %d", cfg.LoginPerMin)
	}
	return cfg, nil
}
