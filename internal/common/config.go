// Package common provides shared utilities for the Verified Wealth client
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the client
type Config struct {
	Environment     string        `toml:"environment"`
	DisplayCurrency string        `toml:"display_currency"` // ISO currency code used when an account carries none
	Backend         BackendConfig `toml:"backend"`
	Storage         StorageConfig `toml:"storage"`
	Session         SessionConfig `toml:"session"`
	Logging         LoggingConfig `toml:"logging"`
}

// BackendConfig holds Verified Wealth API configuration
type BackendConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration
func (c *BackendConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// StorageConfig holds the local credential store location.
// The bearer credential is the only durable client-side state.
type StorageConfig struct {
	Path string `toml:"path"`
}

// SessionConfig holds session state machine tuning.
type SessionConfig struct {
	ExpiryCooldown string `toml:"expiry_cooldown"` // duration string, default "1s"
}

// GetExpiryCooldown parses and returns the cooldown between the Expiring
// and LoggedOut session states.
func (c *SessionConfig) GetExpiryCooldown() time.Duration {
	d, err := time.ParseDuration(c.ExpiryCooldown)
	if err != nil {
		return time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment:     "development",
		DisplayCurrency: "USD",
		Backend: BackendConfig{
			BaseURL:   "https://api.verifiedwealth.app/api",
			RateLimit: 5,
			Timeout:   "30s",
		},
		Storage: StorageConfig{
			Path: "data/credentials",
		},
		Session: SessionConfig{
			ExpiryCooldown: "1s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateDisplayCurrency(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VW_ENV"); env != "" {
		config.Environment = env
	}

	if url := os.Getenv("VW_API_URL"); url != "" {
		config.Backend.BaseURL = url
	}

	if rl := os.Getenv("VW_API_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil && n > 0 {
			config.Backend.RateLimit = n
		}
	}

	if t := os.Getenv("VW_API_TIMEOUT"); t != "" {
		config.Backend.Timeout = t
	}

	if path := os.Getenv("VW_DATA_PATH"); path != "" {
		config.Storage.Path = filepath.Join(path, "credentials")
	}

	if level := os.Getenv("VW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("VW_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if dc := os.Getenv("VW_DISPLAY_CURRENCY"); dc != "" {
		config.DisplayCurrency = strings.ToUpper(dc)
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// LogFormat returns the effective log format. An explicit setting wins;
// otherwise production logs as json and everything else as console.
func (c *Config) LogFormat() string {
	if c.Logging.Format != "" {
		return c.Logging.Format
	}
	if c.IsProduction() {
		return "json"
	}
	return "console"
}

// validateDisplayCurrency ensures DisplayCurrency is a 3-letter code,
// defaulting to "USD".
func validateDisplayCurrency(config *Config) {
	dc := strings.ToUpper(strings.TrimSpace(config.DisplayCurrency))
	if len(dc) != 3 {
		dc = "USD"
	}
	config.DisplayCurrency = dc
}
