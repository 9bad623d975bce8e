// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for sound-inactivity
type Config struct {
	// TimeoutMinutes is the inactivity timeout, in whole minutes.
	TimeoutMinutes uint64 `yaml:"timeout_minutes" env:"SOUND_INACTIVITY_TIMEOUT_MINUTES"`

	// PollInterval is the pause between idle-time checks.
	PollInterval time.Duration `yaml:"poll_interval" env:"SOUND_INACTIVITY_POLL_INTERVAL"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"SOUND_INACTIVITY_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TimeoutMinutes: 5,
		PollInterval:   5 * time.Second,
		LogLevel:       "info",
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("SOUND_INACTIVITY_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "sound-inactivity", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "sound-inactivity", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if timeout := os.Getenv("SOUND_INACTIVITY_TIMEOUT_MINUTES"); timeout != "" {
		minutes, err := strconv.ParseUint(timeout, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SOUND_INACTIVITY_TIMEOUT_MINUTES: %w", err)
		}
		cfg.TimeoutMinutes = minutes
	}

	if interval := os.Getenv("SOUND_INACTIVITY_POLL_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid SOUND_INACTIVITY_POLL_INTERVAL: %w", err)
		}
		cfg.PollInterval = d
	}

	if level := os.Getenv("SOUND_INACTIVITY_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.TimeoutMinutes == 0 {
		return fmt.Errorf("timeout_minutes must be greater than zero")
	}

	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}

	return nil
}
