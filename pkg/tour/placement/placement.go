// Package placement computes where a tour tooltip goes.
//
// Given the target's on-screen rectangle, the tooltip's rendered size, and
// the viewport size, the resolver picks a side of the target, positions the
// tooltip there with a fixed gap, clamps it into the viewport, and falls
// back across sides until a candidate is accepted. The package is pure
// geometry: no state, no side effects, and identical inputs always produce
// identical results.
//
// # Algorithm
//
// Candidates are tried in a fixed order: [bottom, top, right, left] when
// the step asks for automatic placement, or the hinted side first followed
// by the same order. Each trial position is center-aligned on the target
// along the perpendicular axis, offset by Gap, then clamped into the
// viewport with Inset on every side. The first candidate whose clamped
// rectangle neither overlaps the target nor leaves the viewport wins.
//
// When every candidate is rejected, the first candidate is re-placed with
// a doubled gap, re-clamped, and accepted unconditionally. Overlap is
// permitted at that stage; the resolver never fails to produce a position.
//
// All coordinates are terminal cells.
package placement

import (
	"strings"

	"github.com/matzehuels/docent/pkg/errors"
	"github.com/matzehuels/docent/pkg/geometry"
)

// Layout constants, in cells.
const (
	// Gap separates the target edge from the tooltip.
	Gap = 16

	// FallbackGap replaces Gap for the unconditional last-resort placement.
	FallbackGap = 2 * Gap

	// Inset keeps clamped tooltips away from the viewport edges.
	Inset = 16
)

// Placement identifies the side of the target a tooltip is placed on.
// The zero value Auto asks the resolver to choose; resolved layouts never
// carry Auto.
type Placement int

// Placement values, in the resolver's fallback order.
const (
	Auto Placement = iota
	Bottom
	Top
	Right
	Left
)

var placementNames = map[Placement]string{
	Auto:   "auto",
	Bottom: "bottom",
	Top:    "top",
	Right:  "right",
	Left:   "left",
}

// String returns the lowercase name of the placement.
func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return "auto"
}

// Parse converts a placement name to a Placement. The empty string and
// "auto" both mean automatic placement. Names are case-insensitive.
func Parse(name string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "bottom":
		return Bottom, nil
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Auto, errors.New(errors.ErrCodeInvalidPlacement,
		"invalid placement: %q (must be one of: auto, bottom, top, right, left)", name)
}

// Result is the outcome of one resolution. Position is the tooltip's
// top-left cell, Placement the winning side (never Auto), and Arrow the
// viewport cell of the indicator glyph on the tooltip border. Fallback
// reports that the doubled-gap last resort was used.
type Result struct {
	Position      geometry.Point
	Placement     Placement
	Arrow         geometry.Point
	ArrowRotation int
	Fallback      bool
}

// Spotlight returns the target's rectangle expanded by padding on all
// sides. The result is a viewport-coordinate snapshot and may extend past
// the viewport edges; renderers clip it.
func Spotlight(target geometry.Rect, padding int) geometry.Rect {
	return target.Expand(padding)
}

// Resolve places a tooltip of the given size against target inside
// viewport. hint is the step's requested side, or Auto to let the
// resolver choose.
func Resolve(target geometry.Rect, tooltip, viewport geometry.Size, hint Placement) Result {
	view := geometry.Rect{Width: viewport.Width, Height: viewport.Height}
	cands := candidates(hint)

	for _, side := range cands {
		pos := clamp(trial(side, target, tooltip, Gap), tooltip, viewport)
		box := geometry.FromSize(pos, tooltip)
		if !box.Intersects(target) && box.Within(view) {
			arrow, rot := arrowFor(side, target, box)
			return Result{Position: pos, Placement: side, Arrow: arrow, ArrowRotation: rot}
		}
	}

	// Last resort: first candidate, doubled gap, accepted even if it
	// overlaps the target or spills out of a too-small viewport.
	side := cands[0]
	pos := clamp(trial(side, target, tooltip, FallbackGap), tooltip, viewport)
	box := geometry.FromSize(pos, tooltip)
	arrow, rot := arrowFor(side, target, box)
	return Result{Position: pos, Placement: side, Arrow: arrow, ArrowRotation: rot, Fallback: true}
}

// candidates returns the ordered sides to try. A concrete hint goes
// first; the standard order follows. Duplicates are harmless because the
// first accepted candidate wins.
func candidates(hint Placement) []Placement {
	if hint == Auto {
		return []Placement{Bottom, Top, Right, Left}
	}
	return []Placement{hint, Bottom, Top, Right, Left}
}

// trial computes the unclamped tooltip position for one side: offset from
// the target edge by gap, center-aligned on the target's midpoint along
// the other axis.
func trial(side Placement, target geometry.Rect, tooltip geometry.Size, gap int) geometry.Point {
	switch side {
	case Top:
		return geometry.Point{
			Top:  target.Top - gap - tooltip.Height,
			Left: target.CenterX() - tooltip.Width/2,
		}
	case Right:
		return geometry.Point{
			Top:  target.CenterY() - tooltip.Height/2,
			Left: target.Right() + gap,
		}
	case Left:
		return geometry.Point{
			Top:  target.CenterY() - tooltip.Height/2,
			Left: target.Left - gap - tooltip.Width,
		}
	default: // Bottom
		return geometry.Point{
			Top:  target.Bottom() + gap,
			Left: target.CenterX() - tooltip.Width/2,
		}
	}
}

// clamp pulls a trial position into the viewport with Inset on all sides.
// When the tooltip is larger than the inset viewport the top/left bound
// wins, which can leave the box past the far edge; the acceptance test
// catches that.
func clamp(pos geometry.Point, tooltip, viewport geometry.Size) geometry.Point {
	return geometry.Point{
		Top:  geometry.Clamp(pos.Top, Inset, viewport.Height-Inset-tooltip.Height),
		Left: geometry.Clamp(pos.Left, Inset, viewport.Width-Inset-tooltip.Width),
	}
}
