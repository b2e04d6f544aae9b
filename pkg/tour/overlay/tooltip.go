package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/tour/style"
)

// Tooltip sizing constants, in cells.
const (
	// MaxTooltipWidth is the widest a tooltip renders, border included.
	MaxTooltipWidth = 44

	// minTooltipInner keeps the footer readable on very short content.
	minTooltipInner = 18
)

// wordBreaks are the characters Wordwrap may break on besides spaces.
const wordBreaks = "-"

// TooltipSpec describes one tooltip frame. It carries plain strings and
// flags only, so the renderer stays independent of the tour engine.
type TooltipSpec struct {
	Title   string
	Content string

	// Progress is the pre-formatted counter, empty when hidden.
	Progress string

	// ShowBack hides the back hint on the first step. ShowSkip mirrors
	// the skip-button config flag. IsLast switches the next hint to a
	// done hint.
	ShowBack bool
	ShowSkip bool
	IsLast   bool

	Styles style.Styles
}

// Progress formats the step counter for a zero-based index.
func Progress(index, total int) string {
	return fmt.Sprintf("%d/%d", index+1, total)
}

// Measure returns the rendered size of the tooltip. Placement math runs
// against this exact size, so Measure and Render share one code path.
func Measure(spec TooltipSpec, viewport geometry.Size) geometry.Size {
	rendered := Render(spec, viewport)
	return geometry.Size{Width: lipgloss.Width(rendered), Height: lipgloss.Height(rendered)}
}

// Render draws the tooltip box: bold title, wrapped content, then a
// footer with the progress counter and navigation hints. The box hugs
// its content up to MaxTooltipWidth and never exceeds the viewport.
func Render(spec TooltipSpec, viewport geometry.Size) string {
	box, ok := spec.Styles.Get(style.ElementTooltip)
	if !ok {
		box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	}

	maxTotal := MaxTooltipWidth
	if limit := viewport.Width - 2; limit > 0 && limit < maxTotal {
		maxTotal = limit
	}
	innerMax := maxTotal - box.GetHorizontalFrameSize()
	if innerMax < minTooltipInner {
		innerMax = minTooltipInner
	}

	title := ansi.Wordwrap(spec.Title, innerMax, wordBreaks)
	content := ansi.Wordwrap(spec.Content, innerMax, wordBreaks)
	hints := footerHints(spec)

	inner := widestLine(title)
	if w := widestLine(content); w > inner {
		inner = w
	}
	if w := lipgloss.Width(spec.Progress) + 2 + lipgloss.Width(hints); w > inner {
		inner = w
	}
	if inner > innerMax {
		inner = innerMax
	}
	if inner < minTooltipInner {
		inner = minTooltipInner
	}

	var sections []string
	if spec.Title != "" {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Render(title))
	}
	if spec.Content != "" {
		sections = append(sections, content)
	}
	if hints != "" || spec.Progress != "" {
		if len(sections) > 0 {
			sections = append(sections, "")
		}
		sections = append(sections, justify(spec.Progress, hints, inner))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return box.Width(inner + box.GetHorizontalPadding()).Render(body)
}

// footerHints renders the navigation hints with the button styles from
// the style set.
func footerHints(spec TooltipSpec) string {
	styled := func(el style.Element, label string) string {
		s, ok := spec.Styles.Get(el)
		if !ok {
			return label
		}
		return s.Render(label)
	}

	var parts []string
	if spec.ShowBack {
		parts = append(parts, styled(style.ElementButtonBack, "← back"))
	}
	if spec.IsLast {
		parts = append(parts, styled(style.ElementButtonNext, "→ done"))
	} else {
		parts = append(parts, styled(style.ElementButtonNext, "→ next"))
	}
	if spec.ShowSkip {
		parts = append(parts, styled(style.ElementButtonSkip, "s skip"))
	}
	return strings.Join(parts, "  ")
}

// justify spreads left and right across width with at least one space
// between them.
func justify(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func widestLine(s string) int {
	if s == "" {
		return 0
	}
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return widest
}
