package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for kamut.
type Paths struct {
	// ConfigFile is the path to the config file (~/.kamut/config.yaml).
	ConfigFile string

	// HomeDir is the kamut home directory (~/.kamut).
	HomeDir string
}

// DefaultPaths returns the default paths for kamut.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	kamutHome := filepath.Join(homeDir, ".kamut")

	return &Paths{
		ConfigFile: filepath.Join(kamutHome, "config.yaml"),
		HomeDir:    kamutHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If KAMUT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
