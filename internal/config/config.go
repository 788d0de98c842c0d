// Package config loads lvroute settings from an optional YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding, override and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvLogLevel         = "LVROUTE_LOG_LEVEL"
	EnvLogFormat        = "LVROUTE_LOG_FORMAT"
	EnvCacheSize        = "LVROUTE_CACHE_SIZE"
	EnvBatchConcurrency = "LVROUTE_BATCH_CONCURRENCY"
)

const (
	defaultLoggingLevel     = "warn"
	defaultLoggingFormat    = "text"
	defaultCacheSize        = 128
	defaultBatchConcurrency = 4
)

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Cache   CacheConfig   `yaml:"cache"`
	Batch   BatchConfig   `yaml:"batch"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// CacheConfig sizes the shortest-path table cache. Zero disables it.
type CacheConfig struct {
	Size int `yaml:"size" validate:"gte=0"`
}

// BatchConfig governs concurrent batch execution.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" validate:"gte=1,lte=256"`
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
		Cache:   CacheConfig{Size: defaultCacheSize},
		Batch:   BatchConfig{Concurrency: defaultBatchConcurrency},
	}
}

// Load starts from Default, applies the YAML file at path (skipped when path
// is empty), then environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Logging.Level = valueOrDefault(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = valueOrDefault(EnvLogFormat, c.Logging.Format)

	var err error
	if c.Cache.Size, err = parseInt(EnvCacheSize, c.Cache.Size); err != nil {
		return err
	}
	if c.Batch.Concurrency, err = parseInt(EnvBatchConcurrency, c.Batch.Concurrency); err != nil {
		return err
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
		return n, nil
	}
	return fallback, nil
}
