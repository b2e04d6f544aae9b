package style

import "github.com/charmbracelet/lipgloss"

// Dark is a high-contrast preset for dark terminals: a near-black
// tooltip with a bright frame and a heavily dimmed scrim.
func Dark() Styles {
	var (
		bg     = lipgloss.Color("235")
		fg     = lipgloss.Color("252")
		frame  = lipgloss.Color("250")
		accent = lipgloss.Color("39")
	)
	return Styles{
		ElementOverlay: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		ElementTooltip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frame).
			Background(bg).
			Foreground(fg).
			Padding(0, 1),
		ElementButtonNext: lipgloss.NewStyle().Bold(true).Foreground(accent),
		ElementButtonBack: lipgloss.NewStyle().Foreground(frame),
		ElementButtonSkip: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

// Modern leans on the violet range with a thick border and a spotlight
// treatment that lifts the highlighted region.
func Modern() Styles {
	var (
		violet = lipgloss.Color("99")
		lilac  = lipgloss.Color("183")
		text   = lipgloss.Color("255")
	)
	return Styles{
		ElementOverlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		ElementSpotlight: lipgloss.NewStyle().Bold(true),
		ElementTooltip: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(violet).
			Foreground(text).
			Padding(0, 1),
		ElementButtonNext: lipgloss.NewStyle().Bold(true).Foreground(violet),
		ElementButtonBack: lipgloss.NewStyle().Foreground(lilac),
		ElementButtonSkip: lipgloss.NewStyle().Faint(true),
	}
}

// Minimal keeps the overlay as quiet as possible: a plain single-line
// frame, no colors beyond the dimmed scrim.
func Minimal() Styles {
	return Styles{
		ElementOverlay: lipgloss.NewStyle().Faint(true),
		ElementTooltip: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1),
		ElementButtonNext: lipgloss.NewStyle().Bold(true),
		ElementButtonBack: lipgloss.NewStyle(),
		ElementButtonSkip: lipgloss.NewStyle().Faint(true),
	}
}

// Colorful is the loud preset: magenta frame, yellow highlight on the
// spotlight, green/red affordances.
func Colorful() Styles {
	var (
		magenta = lipgloss.Color("205")
		yellow  = lipgloss.Color("220")
		green   = lipgloss.Color("42")
		red     = lipgloss.Color("167")
	)
	return Styles{
		ElementOverlay:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		ElementSpotlight: lipgloss.NewStyle().Foreground(yellow).Bold(true),
		ElementTooltip: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(magenta).
			Padding(0, 1),
		ElementButtonNext: lipgloss.NewStyle().Bold(true).Foreground(green),
		ElementButtonBack: lipgloss.NewStyle().Foreground(yellow),
		ElementButtonSkip: lipgloss.NewStyle().Foreground(red),
	}
}
