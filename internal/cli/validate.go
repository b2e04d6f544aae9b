package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/docent/pkg/tourfile"
)

// validateCommand creates the validate command for checking tour files.
func (c *CLI) validateCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <tour-file>...",
		Short: "Validate tour definition files",
		Long: `Validate tour definition files.

The validate command loads each file and runs the same checks the tour
engine applies at start: non-empty step targets, placements in range, and
known style presets. Supported formats are TOML, YAML, and JSON, selected
by file extension.

The command exits non-zero if any file fails validation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args, quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failures")

	return cmd
}

// runValidate loads every tour file and prints a per-file verdict.
func (c *CLI) runValidate(ctx context.Context, paths []string, quiet bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	invalid := 0
	for _, path := range paths {
		t, err := tourfile.Load(path)
		if err != nil {
			invalid++
			printError("%s", path)
			printDetail("%v", err)
			continue
		}
		if quiet {
			continue
		}
		printSuccess("%s", tourLabel(t, path))
		printStats(len(t.Config.Steps), formatLabel(path))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d tour files invalid", invalid, len(paths))
	}

	if len(paths) == 1 {
		prog.done("Validated 1 tour")
	} else {
		prog.done(fmt.Sprintf("Validated %d tours", len(paths)))
	}
	return nil
}

// tourLabel returns the display name for a loaded tour.
func tourLabel(t *tourfile.Tour, path string) string {
	if t.Name != "" {
		return t.Name
	}
	return filepath.Base(path)
}

// formatLabel returns the short format name for a tour file path.
func formatLabel(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "yml" {
		return "yaml"
	}
	return ext
}
