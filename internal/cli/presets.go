package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/docent/pkg/tour/style"
)

// presetDescriptions maps preset names to one-line summaries for display.
var presetDescriptions = map[string]string{
	"dark":     "high-contrast tooltip for dark terminals",
	"modern":   "violet frame with a lifted spotlight",
	"minimal":  "plain single-line frame, no colors",
	"colorful": "double border, loud affordances",
}

// presetsCommand creates the presets command listing style presets.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in style presets",
		Long: `List built-in style presets.

Presets are partial style bags merged over the defaults. Pick one with the
demo command's --preset flag or the "preset" key of a tour file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPresets()
		},
	}
}

// runPresets prints each preset name with a short description.
func (c *CLI) runPresets() error {
	printInfo("Available style presets")
	for _, name := range style.Names() {
		printKeyValue(name, presetDescriptions[name])
	}
	printNewline()
	printNextStep("Try one", "docent demo --preset dark")
	return nil
}
