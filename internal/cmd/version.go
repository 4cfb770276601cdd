package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamut-io/kamut/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show kamut version information.

Displays:
  - kamut version, commit, and build date
  - Go version and the Kubernetes API module compiled in`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "kamut version %s\n", info.Version)
	fmt.Fprintf(w, "  Commit:    %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)
	fmt.Fprintf(w, "  K8s API:   %s\n", info.KubernetesAPI)

	return nil
}
