package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))
	return configFile
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := writeConfig(t, `
pattern: "manifests/*.kamut.yaml"
namespace: monitoring
workers: 8
log:
  verbose: true
  timestamps: true
`)

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "manifests/*.kamut.yaml", cfg.Pattern)
		assert.Equal(t, "monitoring", cfg.Namespace)
		assert.Equal(t, 8, cfg.Workers)
		assert.True(t, cfg.Log.Verbose)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Pattern)
		assert.Empty(t, cfg.Namespace)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		configFile := writeConfig(t, "pattern: [unclosed\n")

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("KAMUT_PATTERN", "env/*.kamut.yaml")
		t.Setenv("KAMUT_NAMESPACE", "env-namespace")
		t.Setenv("KAMUT_WORKERS", "2")
		t.Setenv("KAMUT_VERBOSE", "true")

		cfg, err := NewLoader().Load(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, "env/*.kamut.yaml", cfg.Pattern)
		assert.Equal(t, "env-namespace", cfg.Namespace)
		assert.Equal(t, 2, cfg.Workers)
		assert.True(t, cfg.Log.Verbose)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("KAMUT_NAMESPACE", "env-namespace")

		cfg, err := NewLoader().Load(writeConfig(t, "namespace: file-namespace\n"))

		require.NoError(t, err)
		assert.Equal(t, "env-namespace", cfg.Namespace)
	})
}

func TestLoaderLoadWithDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, DefaultPattern, cfg.Pattern)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoaderSource(t *testing.T) {
	t.Setenv("KAMUT_WORKERS", "3")

	loader := NewLoader()
	_, err := loader.Load(writeConfig(t, "namespace: file-namespace\nworkers: 9\n"))
	require.NoError(t, err)

	assert.Equal(t, SourceConfig, loader.Source("namespace"))
	assert.Equal(t, SourceEnv, loader.Source("workers"))
	assert.Equal(t, SourceDefault, loader.Source("pattern"))
}

func TestConfigWithDefaults(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var cfg *Config
		assert.Equal(t, DefaultConfig(), cfg.WithDefaults())
	})

	t.Run("keeps set values", func(t *testing.T) {
		cfg := (&Config{Pattern: "*.k.yaml", Workers: -1}).WithDefaults()
		assert.Equal(t, "*.k.yaml", cfg.Pattern)
		assert.Equal(t, DefaultNamespace, cfg.Namespace)
		assert.Equal(t, DefaultWorkers, cfg.Workers)
	})
}

func TestConfigFileExists(t *testing.T) {
	t.Run("returns true for existing file", func(t *testing.T) {
		exists, err := ConfigFileExists(writeConfig(t, ""))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false for missing file", func(t *testing.T) {
		exists, err := ConfigFileExists(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
