package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TimeoutMinutes != 5 {
		t.Errorf("expected TimeoutMinutes to be 5 but got %d", cfg.TimeoutMinutes)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("expected PollInterval to be 5s but got %v", cfg.PollInterval)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel to be info but got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Save original env and restore after test
	origTimeout := os.Getenv("SOUND_INACTIVITY_TIMEOUT_MINUTES")
	origInterval := os.Getenv("SOUND_INACTIVITY_POLL_INTERVAL")
	origLevel := os.Getenv("SOUND_INACTIVITY_LOG_LEVEL")
	defer func() {
		_ = os.Setenv("SOUND_INACTIVITY_TIMEOUT_MINUTES", origTimeout)
		_ = os.Setenv("SOUND_INACTIVITY_POLL_INTERVAL", origInterval)
		_ = os.Setenv("SOUND_INACTIVITY_LOG_LEVEL", origLevel)
	}()

	tests := []struct {
		name      string
		envVars   map[string]string
		checkFunc func(*testing.T, *Config)
		wantErr   bool
	}{
		{
			name: "valid environment variables",
			envVars: map[string]string{
				"SOUND_INACTIVITY_TIMEOUT_MINUTES": "15",
				"SOUND_INACTIVITY_POLL_INTERVAL":   "10s",
				"SOUND_INACTIVITY_LOG_LEVEL":       "debug",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.TimeoutMinutes != 15 {
					t.Errorf("expected TimeoutMinutes 15, got %d", cfg.TimeoutMinutes)
				}
				if cfg.PollInterval != 10*time.Second {
					t.Errorf("expected PollInterval 10s, got %v", cfg.PollInterval)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("expected LogLevel debug, got %s", cfg.LogLevel)
				}
			},
		},
		{
			name: "invalid timeout",
			envVars: map[string]string{
				"SOUND_INACTIVITY_TIMEOUT_MINUTES": "not-a-number",
			},
			wantErr: true,
		},
		{
			name: "invalid poll interval",
			envVars: map[string]string{
				"SOUND_INACTIVITY_POLL_INTERVAL": "sometimes",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = os.Unsetenv("SOUND_INACTIVITY_TIMEOUT_MINUTES")
			_ = os.Unsetenv("SOUND_INACTIVITY_POLL_INTERVAL")
			_ = os.Unsetenv("SOUND_INACTIVITY_LOG_LEVEL")

			for key, value := range tt.envVars {
				_ = os.Setenv(key, value)
			}

			cfg := DefaultConfig()
			err := loadFromEnv(cfg)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte("timeout_minutes: 20\npoll_interval: 2s\nlog_level: warning\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := DefaultConfig()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile returned unexpected error: %v", err)
	}

	if cfg.TimeoutMinutes != 20 {
		t.Errorf("expected TimeoutMinutes 20, got %d", cfg.TimeoutMinutes)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Errorf("expected PollInterval 2s, got %v", cfg.PollInterval)
	}
	if cfg.LogLevel != "warning" {
		t.Errorf("expected LogLevel warning, got %s", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "default config is valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "zero timeout rejected",
			mutate:  func(cfg *Config) { cfg.TimeoutMinutes = 0 },
			wantErr: true,
		},
		{
			name:    "zero poll interval rejected",
			mutate:  func(cfg *Config) { cfg.PollInterval = 0 },
			wantErr: true,
		},
		{
			name:    "negative poll interval rejected",
			mutate:  func(cfg *Config) { cfg.PollInterval = -time.Second },
			wantErr: true,
		},
		{
			name:    "unknown log level rejected",
			mutate:  func(cfg *Config) { cfg.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
