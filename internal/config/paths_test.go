package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty path", input: "", expected: ""},
		{name: "absolute path", input: "/absolute/path", expected: "/absolute/path"},
		{name: "relative path", input: "relative/path", expected: "relative/path"},
		{name: "home directory only", input: "~", expected: homeDir},
		{name: "path with tilde", input: "~/.kamut/config.yaml", expected: filepath.Join(homeDir, ".kamut", "config.yaml")},
		{name: "other user unsupported", input: "~bob/config.yaml", expected: "~bob/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, ".kamut", filepath.Base(paths.HomeDir))
	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfig, "/etc/kamut.yaml")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/etc/kamut.yaml", path)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "config.yaml", filepath.Base(path))
	})
}
