// Package overlay renders tour frames: the dimmed backdrop with a
// spotlight cutout, the tooltip box, and the connector arrow, composited
// over a host view rendered elsewhere.
//
// Compositing is string surgery on the host's finished frame. Every
// line is cut with ANSI-aware primitives so embedded escape sequences
// survive: segments outside the spotlight are stripped and re-styled
// with the overlay style, the spotlight band passes through untouched,
// and the tooltip lines replace whatever they cover. The result has the
// exact viewport dimensions regardless of the host frame's size.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/docent/pkg/geometry"
	"github.com/matzehuels/docent/pkg/tour/placement"
	"github.com/matzehuels/docent/pkg/tour/style"
)

// arrowGlyphs maps connector rotations to the glyph drawn on the
// tooltip border.
var arrowGlyphs = map[int]string{
	placement.RotationUp:    "▲",
	placement.RotationRight: "▶",
	placement.RotationDown:  "▼",
	placement.RotationLeft:  "◀",
}

// Frame is one fully resolved overlay frame ready for compositing.
type Frame struct {
	// Base is the host view the overlay draws over.
	Base     string
	Viewport geometry.Size

	// Spotlight is the region kept undimmed, in viewport coordinates.
	Spotlight geometry.Rect

	// Tooltip is the rendered tooltip box, placed at TooltipAt.
	Tooltip   string
	TooltipAt geometry.Point

	// Arrow locates the connector glyph, normally on the tooltip border.
	Arrow         geometry.Point
	ArrowRotation int

	Styles style.Styles

	// Dimmed applies the overlay style outside the spotlight. It is off
	// when the backdrop is disabled in config.
	Dimmed bool
}

// Composite renders the frame. The base is normalized to the viewport
// size first, then scrim, tooltip, and arrow are applied in that order.
func Composite(f Frame) string {
	width, height := f.Viewport.Width, f.Viewport.Height
	if width <= 0 || height <= 0 {
		return f.Base
	}

	lines := normalize(f.Base, width, height)
	if f.Dimmed {
		applyScrim(lines, f, width, height)
	}
	if f.Tooltip != "" {
		for i, ttLine := range strings.Split(f.Tooltip, "\n") {
			row := f.TooltipAt.Top + i
			if row < 0 || row >= height {
				continue
			}
			lines[row] = splice(lines[row], f.TooltipAt.Left, ttLine, width)
		}
		if glyph, ok := arrowGlyphs[f.ArrowRotation]; ok {
			if f.Arrow.Top >= 0 && f.Arrow.Top < height {
				arrow := arrowStyle(f.Styles).Render(glyph)
				lines[f.Arrow.Top] = splice(lines[f.Arrow.Top], f.Arrow.Left, arrow, width)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// normalize pads or cuts the base into exactly height lines of exactly
// width cells each.
func normalize(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		switch w := ansi.StringWidth(lines[i]); {
		case w > width:
			lines[i] = ansi.Truncate(lines[i], width, "")
		case w < width:
			lines[i] += strings.Repeat(" ", width-w)
		}
	}
	return lines
}

// applyScrim restyles everything outside the spotlight with the overlay
// style. The spotlight band passes through unchanged unless the style
// set carries an explicit spotlight entry, in which case the band is
// stripped and re-styled with it.
func applyScrim(lines []string, f Frame, width, height int) {
	scrim, ok := f.Styles.Get(style.ElementOverlay)
	if !ok {
		scrim = lipgloss.NewStyle().Faint(true)
	}
	spot, restyle := f.Styles.Get(style.ElementSpotlight)

	// Inline rendering keeps border or padding in an override style from
	// inserting newlines into the middle of a frame line.
	scrim = scrim.Inline(true)
	spot = spot.Inline(true)

	top := clampInt(f.Spotlight.Top, 0, height)
	bottom := clampInt(f.Spotlight.Bottom(), 0, height)
	left := clampInt(f.Spotlight.Left, 0, width)
	right := clampInt(f.Spotlight.Right(), 0, width)

	for i := range lines {
		if i < top || i >= bottom || right <= left {
			lines[i] = scrim.Render(ansi.Strip(lines[i]))
			continue
		}
		leftSeg := ansi.Truncate(lines[i], left, "")
		midSeg := ansi.Truncate(ansi.TruncateLeft(lines[i], left, ""), right-left, "")
		rightSeg := ansi.TruncateLeft(lines[i], right, "")
		if restyle {
			midSeg = spot.Render(ansi.Strip(midSeg))
		}
		lines[i] = scrim.Render(ansi.Strip(leftSeg)) + midSeg + ansi.ResetStyle + scrim.Render(ansi.Strip(rightSeg))
	}
}

// splice overwrites the cells of line from at onward with seg, keeping
// the line at exactly width cells. Out-of-range portions of seg are
// dropped.
func splice(line string, at int, seg string, width int) string {
	segWidth := ansi.StringWidth(seg)
	if segWidth == 0 || at >= width || at+segWidth <= 0 {
		return line
	}
	if at < 0 {
		seg = ansi.TruncateLeft(seg, -at, "")
		segWidth += at
		at = 0
	}
	if at+segWidth > width {
		seg = ansi.Truncate(seg, width-at, "")
		segWidth = width - at
	}
	left := ansi.Truncate(line, at, "")
	right := ansi.TruncateLeft(line, at+segWidth, "")
	return left + ansi.ResetStyle + seg + ansi.ResetStyle + right
}

func arrowStyle(styles style.Styles) lipgloss.Style {
	box, _ := styles.Get(style.ElementTooltip)
	return lipgloss.NewStyle().Foreground(box.GetBorderTopForeground())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
