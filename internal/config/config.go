// Package config provides configuration loading and management.
package config

import "github.com/kamut-io/kamut/internal/expand"

// Built-in defaults.
const (
	// DefaultPattern matches every kamut file in the working directory.
	DefaultPattern = "*.kamut.yaml"

	// DefaultNamespace is the ClusterRoleBinding subject namespace for
	// records without a namespace.
	DefaultNamespace = expand.DefaultNamespace

	// DefaultWorkers bounds how many files are processed at once.
	DefaultWorkers = 4
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Verbose enables debug output.
	// Env: KAMUT_VERBOSE or KAMUT_LOG_VERBOSE, Default: false
	Verbose bool `mapstructure:"verbose"`

	// Timestamps controls whether timestamps are shown in log output.
	// Env: KAMUT_LOG_TIMESTAMPS, Default: false (always on when verbose)
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the kamut configuration.
// Loaded from ~/.kamut/config.yaml and overridden by KAMUT_* environment variables.
type Config struct {
	// Pattern is the glob used when no pattern argument is given.
	// Env: KAMUT_PATTERN, Default: "*.kamut.yaml"
	Pattern string `mapstructure:"pattern"`

	// Namespace is the subject namespace for generated bindings of records
	// that declare none.
	// Env: KAMUT_NAMESPACE, Default: "default"
	Namespace string `mapstructure:"namespace"`

	// Workers bounds concurrent file processing.
	// Env: KAMUT_WORKERS, Default: 4
	Workers int `mapstructure:"workers"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Pattern:   DefaultPattern,
		Namespace: DefaultNamespace,
		Workers:   DefaultWorkers,
	}
}

// WithDefaults returns a copy of c with unset values replaced by defaults.
func (c *Config) WithDefaults() *Config {
	out := DefaultConfig()
	if c == nil {
		return out
	}

	out.Log = c.Log
	if c.Pattern != "" {
		out.Pattern = c.Pattern
	}
	if c.Namespace != "" {
		out.Namespace = c.Namespace
	}
	if c.Workers > 0 {
		out.Workers = c.Workers
	}
	return out
}
