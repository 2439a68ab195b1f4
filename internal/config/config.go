// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/jonathan/resume-builder/internal/kvstore"
)

// Environment variables that override file values.
const (
	EnvStore       = "RESUME_STORE"
	EnvDataDir     = "RESUME_DATA_DIR"
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
	EnvChromePath  = "CHROME_PATH"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults.
type Config struct {
	// Storage
	Store       string `json:"store,omitempty"`        // Key-value backend: memory, file, sqlite, redis, postgres
	DataDir     string `json:"data_dir,omitempty"`     // Directory for the file and sqlite backends
	RedisURL    string `json:"redis_url,omitempty"`    // redis:// URL or host:port
	RedisPrefix string `json:"redis_prefix,omitempty"` // Prefix prepended to every redis key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Editing
	AutosaveDelayMS int  `json:"autosave_delay_ms,omitempty"` // Quiescence window before a draft is flushed
	Strict          bool `json:"strict,omitempty"`            // Panic on out-of-range list operations

	// Export
	OutputDir            string `json:"output_dir,omitempty"`             // Where PDF and text exports are written
	ChromePath           string `json:"chrome_path,omitempty"`            // Chrome/Chromium executable for PDF export
	RenderTimeoutSeconds int    `json:"render_timeout_seconds,omitempty"` // Upper bound on a single PDF render

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // trace, debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	dataDir := ".resume-builder"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".resume-builder")
	}
	return Config{
		Store:                kvstore.BackendFile,
		DataDir:              dataDir,
		AutosaveDelayMS:      1000,
		OutputDir:            ".",
		RenderTimeoutSeconds: 60,
		LogLevel:             "info",
		LogFormat:            "text",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Store != "" && !slices.Contains(kvstore.Backends, c.Store) {
		return fmt.Errorf("config error: unknown 'store' %q (want one of %v)", c.Store, kvstore.Backends)
	}

	// Backend-specific requirements
	switch c.Store {
	case kvstore.BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config error: 'redis_url' is required for the redis store")
		}
	case kvstore.BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	case kvstore.BackendFile, kvstore.BackendSQLite:
		if c.DataDir == "" {
			return fmt.Errorf("config error: 'data_dir' is required for the %s store", c.Store)
		}
	}

	// Validate numeric ranges
	if c.AutosaveDelayMS < 0 {
		return fmt.Errorf("config error: 'autosave_delay_ms' must be non-negative")
	}
	if c.RenderTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'render_timeout_seconds' must be non-negative")
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config error: 'log_format' must be text or json")
	}

	// Validate file paths exist (if specified)
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.RedisPrefix == "" {
		result.RedisPrefix = defaults.RedisPrefix
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.AutosaveDelayMS == 0 {
		result.AutosaveDelayMS = defaults.AutosaveDelayMS
	}
	if result.RenderTimeoutSeconds == 0 {
		result.RenderTimeoutSeconds = defaults.RenderTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// ApplyEnv overrides fields with any environment variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(EnvStore); v != "" {
		c.Store = v
	}
	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv(EnvRedisURL); v != "" {
		c.RedisURL = v
	}
	if v := getenv(EnvChromePath); v != "" {
		c.ChromePath = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// AutosaveDelay returns the autosave quiescence window.
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

// RenderTimeout returns the PDF render timeout.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}

// StoreOptions maps the storage fields onto kvstore options.
func (c *Config) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Backend:     c.Store,
		DataDir:     c.DataDir,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
		DatabaseURL: c.DatabaseURL,
	}
}
