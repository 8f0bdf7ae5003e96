// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// the environment.
type Config struct {
	Port         int    `json:"port,omitempty"`          // HTTP API port
	BackendURL   string `json:"backend_url,omitempty"`   // Profile backend base URL
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL for profile records
	RedisAddr    string `json:"redis_addr,omitempty"`    // Redis address for the cross-context bus
	RedisChannel string `json:"redis_channel,omitempty"` // Bus channel name
	DataDir      string `json:"data_dir,omitempty"`      // File storage directory when no database is configured
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty fields from environment variables: PORT, BACKEND_URL,
// DATABASE_URL, REDIS_ADDR, REDIS_CHANNEL, DATA_DIR.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
			c.Port = v
		}
	}
	if c.BackendURL == "" {
		c.BackendURL = os.Getenv("BACKEND_URL")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.RedisAddr == "" {
		c.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if c.RedisChannel == "" {
		c.RedisChannel = os.Getenv("REDIS_CHANNEL")
	}
	if c.DataDir == "" {
		c.DataDir = os.Getenv("DATA_DIR")
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.RedisChannel == "" {
		result.RedisChannel = defaults.RedisChannel
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RedisAddr != "" && c.RedisChannel == "" {
		return fmt.Errorf("config error: 'redis_channel' is required when 'redis_addr' is set")
	}
	return nil
}
