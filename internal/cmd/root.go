// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamut-io/kamut/internal/config"
	"github.com/kamut-io/kamut/internal/output"
)

var (
	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.ResolvedConfig

	// configErr is kept so commands that need configuration can report it.
	configErr error
)

// NewRootCmd creates the root command for the kamut CLI. Without a
// subcommand it generates manifests.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kamut [pattern]",
		Short: "Expand kamut files into Kubernetes manifests",
		Long: `kamut expands simplified *.kamut.yaml documents into full Kubernetes
manifests. Each input file produces one sibling .yaml file holding every
generated document.

Without a subcommand kamut runs generate.

Arguments:
  pattern    Glob selecting input files (default: *.kamut.yaml)

Environment:
  KAMUT_CONFIG     Config file (default: ~/.kamut/config.yaml)
  KAMUT_VERBOSE    Enable debug output
  KAMUT_PATTERN    Default pattern
  KAMUT_NAMESPACE  Namespace used where a record has none
  KAMUT_WORKERS    Files processed concurrently`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, args []string) error {
			initializeGlobals(args)
			return nil
		},
		RunE: runGenerate,
	}

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals resolves configuration and sets up logging.
func initializeGlobals(args []string) {
	opts := config.ResolveAllOptions{}
	if len(args) > 0 {
		opts.PatternArg = args[0]
	}

	resolvedConfig, configErr = config.ResolveAll(opts)
	if configErr != nil {
		// Don't fail here - allow commands that don't need config to work
		output.SetupLogging(output.LogConfig{})
		output.Debug("config load error", "error", configErr)
		return
	}

	cfg := resolvedConfig.Config
	output.SetupLogging(output.LogConfig{
		Verbose:    cfg.Log.Verbose,
		Timestamps: cfg.Log.Timestamps,
	})
	config.LogResolvedValues(resolvedConfig.Values())
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() (*config.ResolvedConfig, error) {
	if configErr != nil {
		return nil, fmt.Errorf("loading configuration: %w", configErr)
	}
	if resolvedConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return resolvedConfig, nil
}
