package config

import (
	"fmt"
	"os"

	"github.com/kamut-io/kamut/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceArg indicates value came from a command-line argument.
	SourceArg ConfigSource = "arg"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value with its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolvedConfig is the effective configuration of one invocation.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	Pattern    ResolvedValue
	Namespace  ResolvedValue
	Workers    ResolvedValue

	// Config holds the typed values, defaults applied.
	Config *Config
}

// Values returns every resolved value for logging.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Pattern, r.Namespace, r.Workers}
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) KAMUT_CONFIG env, (2) ~/.kamut/config.yaml default
func ResolveConfigPath() (ResolvedValue, error) {
	result := ResolvedValue{
		Key:      "config",
		Shadowed: make(map[ConfigSource]string),
	}

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}

	if envValue := os.Getenv(EnvConfig); envValue != "" {
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = paths.ConfigFile
	} else {
		result.Value = paths.ConfigFile
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveAllOptions contains the inputs that do not come from config or env.
type ResolveAllOptions struct {
	// PatternArg is the positional pattern argument (empty if not given).
	PatternArg string
}

// ResolveAll loads the config file and resolves every value using precedence:
// (1) argument, (2) KAMUT_* env, (3) config file, (4) built-in default
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	configPath, err := ResolveConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	exists, err := ConfigFileExists(configPath.Value)
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		output.Debug("config file not found, using defaults and environment", "path", configPath.Value)
	}

	loader := NewLoader()
	cfg, err := loader.LoadWithDefaults(configPath.Value)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		ConfigPath: configPath,
		Pattern:    resolvedString(loader, "pattern", cfg.Pattern),
		Namespace:  resolvedString(loader, "namespace", cfg.Namespace),
		Workers:    resolvedString(loader, "workers", fmt.Sprint(cfg.Workers)),
		Config:     cfg,
	}

	if opts.PatternArg != "" {
		resolved.Pattern.Shadowed[resolved.Pattern.Source] = resolved.Pattern.Value
		resolved.Pattern.Value = opts.PatternArg
		resolved.Pattern.Source = SourceArg
		cfg.Pattern = opts.PatternArg
	}

	return resolved, nil
}

func resolvedString(l *Loader, key, value string) ResolvedValue {
	return ResolvedValue{
		Key:      key,
		Value:    value,
		Source:   l.Source(key),
		Shadowed: make(map[ConfigSource]string),
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
