package config

import (
	"strings"
	"testing"
	"time"

	"finboard/internal/core"
)

func validConfig() Config {
	return Config{
		LoginDelay:  time.Second,
		LogoutDelay: 500 * time.Millisecond,
		FetchDelay:  500 * time.Millisecond,
		SeedDir:     "data",
		LogLevel:    "info",
		SavingsRate: "guarded",
		CacheSize:   64,
		CacheTTL:    5 * time.Minute,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero delays are valid",
			modify:  func(c *Config) { c.LoginDelay, c.LogoutDelay, c.FetchDelay = 0, 0, 0 },
			wantErr: false,
		},
		{
			name:        "negative login delay",
			modify:      func(c *Config) { c.LoginDelay = -time.Second },
			wantErr:     true,
			errorString: "invalid FINBOARD_LOGIN_DELAY -1s: must not be negative",
		},
		{
			name:        "fetch delay too long",
			modify:      func(c *Config) { c.FetchDelay = 2 * time.Minute },
			wantErr:     true,
			errorString: "invalid FINBOARD_FETCH_DELAY 2m0s: must be at most 1 minute",
		},
		{
			name:        "unknown log level",
			modify:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:    "raw savings rate",
			modify:  func(c *Config) { c.SavingsRate = "RAW" },
			wantErr: false,
		},
		{
			name:        "unknown savings rate",
			modify:      func(c *Config) { c.SavingsRate = "optimistic" },
			wantErr:     true,
			errorString: "invalid savings rate policy 'optimistic'",
		},
		{
			name:        "cache size zero",
			modify:      func(c *Config) { c.CacheSize = 0 },
			wantErr:     true,
			errorString: "invalid cache size 0: must be at least 1",
		},
		{
			name:        "cache size too large",
			modify:      func(c *Config) { c.CacheSize = 20000 },
			wantErr:     true,
			errorString: "invalid cache size 20000: must be at most 10000",
		},
		{
			name:        "negative cache ttl",
			modify:      func(c *Config) { c.CacheTTL = -time.Minute },
			wantErr:     true,
			errorString: "invalid cache ttl -1m0s",
		},
		{
			name:        "demo email without password",
			modify:      func(c *Config) { c.DemoEmail = "me@example.com" },
			wantErr:     true,
			errorString: "must be set together",
		},
		{
			name: "malformed demo email",
			modify: func(c *Config) {
				c.DemoEmail = "not-an-email"
				c.DemoPassword = "secret"
			},
			wantErr:     true,
			errorString: "invalid demo email 'not-an-email'",
		},
		{
			name: "custom demo account",
			modify: func(c *Config) {
				c.DemoEmail = "me@example.com"
				c.DemoPassword = "secret"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() expected error, got nil")
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, expected to contain %v", err, tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestConfig_ValidateCombinesErrors(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "loud"
	cfg.CacheSize = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 2 {
		t.Errorf("expected 2 listed problems, got %d in %q", got, err.Error())
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LoginDelay != time.Second {
		t.Errorf("LoginDelay = %v, want 1s", cfg.LoginDelay)
	}
	if cfg.LogoutDelay != 500*time.Millisecond || cfg.FetchDelay != 500*time.Millisecond {
		t.Errorf("LogoutDelay/FetchDelay = %v/%v, want 500ms", cfg.LogoutDelay, cfg.FetchDelay)
	}
	if cfg.SeedDir != "data" || cfg.LogLevel != "info" {
		t.Errorf("SeedDir/LogLevel = %q/%q", cfg.SeedDir, cfg.LogLevel)
	}
	if cfg.Policy() != core.SavingsRateGuarded {
		t.Errorf("Policy() = %q, want guarded", cfg.Policy())
	}
	if cfg.CacheSize != 64 || cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheSize/CacheTTL = %d/%v", cfg.CacheSize, cfg.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FINBOARD_LOGIN_DELAY", "10ms")
	t.Setenv("FINBOARD_SAVINGS_RATE", "raw")
	t.Setenv("FINBOARD_CACHE_SIZE", "8")
	t.Setenv("FINBOARD_DEMO_EMAIL", "me@example.com")
	t.Setenv("FINBOARD_DEMO_PASSWORD", "hunter2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LoginDelay != 10*time.Millisecond {
		t.Errorf("LoginDelay = %v, want 10ms", cfg.LoginDelay)
	}
	if cfg.Policy() != core.SavingsRateRaw {
		t.Errorf("Policy() = %q, want raw", cfg.Policy())
	}
	if cfg.CacheSize != 8 {
		t.Errorf("CacheSize = %d, want 8", cfg.CacheSize)
	}
	if cfg.DemoEmail != "me@example.com" || cfg.DemoPassword != "hunter2" {
		t.Errorf("demo account = %q/%q", cfg.DemoEmail, cfg.DemoPassword)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("FINBOARD_FETCH_DELAY", "soon")

	if _, err := Load(); err == nil {
		t.Error("expected error for unparsable duration")
	}
}
