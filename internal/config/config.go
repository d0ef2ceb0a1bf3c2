package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"GemsByMike/internal/i18n"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Empty means the built-in catalog is served.
	DatabaseURL string `env:"DATABASE_URL"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsToken   string `env:"METRICS_TOKEN"`

	CreateLimitPerMin int `env:"SESSION_CREATE_LIMIT_PER_MIN" envDefault:"30"`

	SessionIdleTTL  time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
	SweepInterval   time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := i18n.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("DEFAULT_LOCALE: %w", err)
	}
	if c.MetricsEnabled && c.MetricsToken == "" {
		return fmt.Errorf("METRICS_TOKEN is required when METRICS_ENABLED is set")
	}
	if c.CreateLimitPerMin < 0 {
		return fmt.Errorf("SESSION_CREATE_LIMIT_PER_MIN must not be negative")
	}
	return nil
}

func (c Config) Locale() i18n.Locale {
	loc, err := i18n.Parse(c.DefaultLocale)
	if err != nil {
		return i18n.Default
	}
	return loc
}

func (c Config) Addr() string { return ":" + c.Port }
