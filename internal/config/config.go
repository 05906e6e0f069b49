package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/ilyakaznacheev/cleanenv"

	"finboard/internal/core"
	"finboard/internal/log"
)

type Config struct {
	// Simulated backend latency
	LoginDelay  time.Duration `env:"FINBOARD_LOGIN_DELAY" env-default:"1s"`
	LogoutDelay time.Duration `env:"FINBOARD_LOGOUT_DELAY" env-default:"500ms"`
	FetchDelay  time.Duration `env:"FINBOARD_FETCH_DELAY" env-default:"500ms"`

	// Seed files
	SeedDir string `env:"FINBOARD_SEED_DIR" env-default:"data"`

	// Logging
	LogLevel string `env:"FINBOARD_LOG_LEVEL" env-default:"info"`

	// Dashboard
	SavingsRate string        `env:"FINBOARD_SAVINGS_RATE" env-default:"guarded"`
	CacheSize   int           `env:"FINBOARD_CACHE_SIZE" env-default:"64"`
	CacheTTL    time.Duration `env:"FINBOARD_CACHE_TTL" env-default:"5m"`

	// Demo account; empty keeps the built-in one
	DemoEmail    string `env:"FINBOARD_DEMO_EMAIL"`
	DemoPassword string `env:"FINBOARD_DEMO_PASSWORD"`
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// Policy returns the savings-rate policy. Call Validate first.
func (c *Config) Policy() core.SavingsRatePolicy {
	return core.SavingsRatePolicy(strings.ToLower(c.SavingsRate))
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	for _, d := range []struct {
		key string
		val time.Duration
	}{
		{"FINBOARD_LOGIN_DELAY", c.LoginDelay},
		{"FINBOARD_LOGOUT_DELAY", c.LogoutDelay},
		{"FINBOARD_FETCH_DELAY", c.FetchDelay},
	} {
		if d.val < 0 {
			errors = append(errors, fmt.Sprintf("invalid %s %v: must not be negative", d.key, d.val))
		} else if d.val > time.Minute {
			errors = append(errors, fmt.Sprintf("invalid %s %v: must be at most 1 minute", d.key, d.val))
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if !c.Policy().Valid() {
		errors = append(errors, fmt.Sprintf("invalid savings rate policy '%s': must be 'guarded' or 'raw'", c.SavingsRate))
	}

	if c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	} else if c.CacheSize > 10000 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at most 10000", c.CacheSize))
	}

	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.CacheTTL))
	}

	// Demo credentials come as a pair
	hasEmail := c.DemoEmail != ""
	hasPassword := c.DemoPassword != ""
	if hasEmail != hasPassword {
		errors = append(errors, "FINBOARD_DEMO_EMAIL and FINBOARD_DEMO_PASSWORD must be set together")
	}
	if hasEmail {
		if err := checkmail.ValidateFormat(c.DemoEmail); err != nil {
			errors = append(errors, fmt.Sprintf("invalid demo email '%s': %v", c.DemoEmail, err))
		}
	}
	if len(c.DemoPassword) > 72 {
		errors = append(errors, "demo password must be at most 72 bytes")
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
