package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamut-io/kamut/internal/batch"
	oerrors "github.com/kamut-io/kamut/internal/errors"
	"github.com/kamut-io/kamut/internal/expand"
	"github.com/kamut-io/kamut/internal/output"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate [pattern]",
		Aliases: []string{"gen"},
		Short:   "Generate manifests from kamut files",
		Long: `Generate Kubernetes manifests from kamut files.

Every file matching the pattern is expanded. The manifests of foo.kamut.yaml
are written to foo.yaml in the same directory. A file with an invalid
document is skipped as a whole; other files are still generated.

Arguments:
  pattern    Glob selecting input files (default: *.kamut.yaml)

Examples:
  # Generate for every kamut file in the current directory
  kamut generate

  # Generate for one directory
  kamut generate 'deploy/*.kamut.yaml'

  # Show every generated resource
  KAMUT_VERBOSE=true kamut`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, _ []string) error {
	resolved, err := GetResolvedConfig()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}
	cfg := resolved.Config

	files, err := batch.FindFiles(cfg.Pattern)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}
	if len(files) == 0 {
		output.Warn("no files matched", "pattern", cfg.Pattern)
		return nil
	}
	output.Debug("found files", "pattern", cfg.Pattern, "count", len(files))

	proc := batch.NewProcessor(expand.Options{DefaultNamespace: cfg.Namespace}, cfg.Workers)

	var summary *batch.Summary
	runErr := output.RunWithSpinner(cmd.Context(), func() error {
		var err error
		summary, err = proc.Run(cmd.Context(), files)
		return err
	}, output.WithTitle(fmt.Sprintf("Generating manifests for %d files...", len(files))))

	if summary != nil {
		printSummary(files, summary)
	}
	if runErr != nil {
		code := oerrors.ExitCodeFromError(runErr)
		output.Debug("generate failed", "exit", code, "reason", oerrors.ExitCodeName(code))
		// Each file error was logged as it happened.
		return &oerrors.ExitError{
			Code:    code,
			Err:     runErr,
			Printed: summary != nil,
		}
	}

	return nil
}

func printSummary(files []string, s *batch.Summary) {
	for i, res := range s.Results {
		status := output.StatusGenerated
		switch {
		case res == nil:
			status = output.StatusFailed
		case !res.Written():
			status = output.StatusSkipped
		}
		output.Debug(output.FormatFileLine(files[i], status))
	}

	msg := fmt.Sprintf("%d of %d files generated (%d documents, %d resources)",
		s.Generated, s.Files, s.Documents, s.Resources)
	if s.Failed > 0 {
		output.Error(fmt.Sprintf("%s, %d failed", msg, s.Failed))
		return
	}
	output.Info(output.FormatCheckmark(output.StyleSummary.Render(msg)))
}
