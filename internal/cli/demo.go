package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/docent/pkg/tour"
	"github.com/matzehuels/docent/pkg/tour/placement"
	"github.com/matzehuels/docent/pkg/tour/style"
	"github.com/matzehuels/docent/pkg/tourfile"
)

// demoCommand creates the demo command running the dashboard tour.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		tourPath  string
		preset    string
		autostart bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive tour demo",
		Long: `Run the interactive tour demo.

The demo opens a small service dashboard and attaches a guided tour to its
regions. Press t to start the tour, arrow keys or n/p to move between
steps, s to skip, and esc to end the tour early.

A custom tour can be loaded from a TOML, YAML, or JSON file with --tour;
its step targets must name dashboard regions (header, menu, services,
activity, status).

Set DOCENT_DEBUG to a file path to capture tour engine logs while the
demo owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), tourPath, preset, autostart)
		},
	}

	cmd.Flags().StringVarP(&tourPath, "tour", "t", "", "load tour definition from file")
	cmd.Flags().StringVar(&preset, "preset", "", "style preset: "+strings.Join(style.Names(), ", "))
	cmd.Flags().BoolVar(&autostart, "autostart", false, "start the tour immediately")

	return cmd
}

// runDemo wires the tour to the demo dashboard and runs the program.
func (c *CLI) runDemo(ctx context.Context, tourPath, preset string, autostart bool) error {
	cfg, err := demoConfig(tourPath)
	if err != nil {
		return err
	}
	if preset != "" {
		bag, err := style.Preset(preset)
		if err != nil {
			return err
		}
		cfg.Styles = style.Merge(cfg.Styles, bag)
	}

	// Bubble Tea owns the terminal while the demo runs, so engine logs
	// go to a file when requested instead of stderr.
	if path := os.Getenv("DOCENT_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, appName)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		cfg.Logger = newLogger(f, log.DebugLevel)
	}

	regions := newRegionIndex()
	ctrl, err := tour.NewController(cfg, tour.WithTargets(regions))
	if err != nil {
		return fmt.Errorf("configure tour: %w", err)
	}

	m := newDashboard(tour.NewModel(ctrl), regions, autostart)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// demoConfig returns the tour configuration for the dashboard, either the
// built-in walkthrough or one loaded from path.
func demoConfig(path string) (tour.Config, error) {
	if path == "" {
		return builtinTour(), nil
	}
	t, err := tourfile.Load(path)
	if err != nil {
		return tour.Config{}, err
	}
	return t.Config, nil
}

// builtinTour is the default walkthrough of the dashboard regions.
func builtinTour() tour.Config {
	return tour.Config{
		Steps: []tour.Step{
			{
				Target:  "header",
				Title:   "Welcome to docent",
				Content: "This dashboard is a playground for the tour engine. Everything you see is a named region a tour can point at.",
			},
			{
				Target:           "menu",
				Title:            "Navigation",
				Content:          "Move between sections with j and k. This step allows interaction, so try it before moving on.",
				Placement:        placement.Right,
				AllowInteraction: true,
			},
			{
				Target:  "services",
				Title:   "Service inventory",
				Content: "Live status for every service. Degraded rows are highlighted.",
			},
			{
				Target:  "activity",
				Title:   "Activity feed",
				Content: "Recent events, oldest first. The panel scrolled down so this is in view.",
			},
			{
				Target:    "status",
				Title:     "Status bar",
				Content:   "Key hints live here, along with tour progress while one is running.",
				Placement: placement.Top,
			},
		},
		ShowProgress:     true,
		ShowSkipButton:   true,
		ScrollToSteps:    true,
		ScrollOffset:     2,
		SpotlightPadding: 1,
	}
}
