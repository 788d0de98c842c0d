package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
logging:
  level: debug
  format: json
cache:
  size: 0
batch:
  concurrency: 8
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Cache.Size)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\nbatch:\n  concurrency: 8\n")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvBatchConcurrency, "2")
	t.Setenv(config.EnvCacheSize, "16")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
	assert.Equal(t, 16, cfg.Cache.Size)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "logging: [\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("bad level", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "logging:\n  level: loud\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("negative cache", func(t *testing.T) {
		t.Setenv(config.EnvCacheSize, "-1")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("non-numeric concurrency", func(t *testing.T) {
		t.Setenv(config.EnvBatchConcurrency, "many")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
