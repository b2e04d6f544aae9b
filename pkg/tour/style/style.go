// Package style defines the visual overrides for tour overlays.
//
// Styles are an opaque bag keyed by element name. The tour core merges
// caller overrides over the computed defaults with override precedence
// and forwards the result to the renderer; it never inspects the values.
// Pre-built presets ("dark", "modern", "minimal", "colorful") are partial
// bags mergeable into a config like any other override.
package style

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/docent/pkg/errors"
)

// Element names the overlay parts that accept style overrides.
type Element string

// Elements recognized by the renderer.
const (
	// ElementOverlay styles the dimmed scrim outside the spotlight.
	ElementOverlay Element = "overlay"

	// ElementSpotlight restyles the highlighted region itself. Without an
	// entry the region shows the host's own rendering untouched.
	ElementSpotlight Element = "spotlight"

	// ElementTooltip styles the tooltip box (border, padding, colors).
	ElementTooltip Element = "tooltip"

	// ElementButtonNext, ElementButtonBack, and ElementButtonSkip style
	// the navigation affordances in the tooltip footer.
	ElementButtonNext Element = "buttonNext"
	ElementButtonBack Element = "buttonBack"
	ElementButtonSkip Element = "buttonSkip"
)

// Styles maps elements to lipgloss styles. A nil map is a valid empty bag.
type Styles map[Element]lipgloss.Style

// Merge returns a new bag containing base entries overridden by entries
// from override. Neither input is mutated.
func Merge(base, override Styles) Styles {
	out := make(Styles, len(base)+len(override))
	for el, st := range base {
		out[el] = st
	}
	for el, st := range override {
		out[el] = st
	}
	return out
}

// Get returns the style for an element and whether the bag has one.
func (s Styles) Get(el Element) (lipgloss.Style, bool) {
	st, ok := s[el]
	return st, ok
}

// =============================================================================
// Defaults
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // Teal - primary actions
	colorBorder = lipgloss.Color("245") // Gray - tooltip frame
	colorMuted  = lipgloss.Color("240") // Dim gray - secondary affordances
	colorScrim  = lipgloss.Color("238") // Dark gray - dimmed background
)

// Default returns the computed default bag every tour starts from.
// There is no spotlight entry: by default the highlighted region shows
// the host's rendering untouched.
func Default() Styles {
	return Styles{
		ElementOverlay: lipgloss.NewStyle().Foreground(colorScrim),
		ElementTooltip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		ElementButtonNext: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		ElementButtonBack: lipgloss.NewStyle().Foreground(colorBorder),
		ElementButtonSkip: lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// =============================================================================
// Presets
// =============================================================================

var presets = map[string]func() Styles{
	"dark":     Dark,
	"modern":   Modern,
	"minimal":  Minimal,
	"colorful": Colorful,
}

// Names returns the available preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named preset bag. Names are case-insensitive.
func Preset(name string) (Styles, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidPreset,
			"invalid preset: %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	return build(), nil
}
