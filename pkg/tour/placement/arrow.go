package placement

import "github.com/matzehuels/docent/pkg/geometry"

// Arrow rotations in degrees, clockwise from pointing up. Renderers map
// these to glyphs or transforms.
const (
	RotationUp    = 0
	RotationRight = 90
	RotationDown  = 180
	RotationLeft  = 270
)

// arrowInset keeps the arrow off the tooltip's corner cells.
const arrowInset = 2

// arrowFor places the indicator on the tooltip border cell facing the
// target, aligned with the target's midpoint and clamped inside the
// border minus arrowInset so it never lands outside the tooltip body.
func arrowFor(side Placement, target geometry.Rect, tooltip geometry.Rect) (geometry.Point, int) {
	switch side {
	case Top:
		// Tooltip above the target; arrow on the bottom border, pointing down.
		left := geometry.Clamp(target.CenterX(), tooltip.Left+arrowInset, tooltip.Right()-1-arrowInset)
		return geometry.Point{Top: tooltip.Bottom() - 1, Left: left}, RotationDown
	case Right:
		// Tooltip right of the target; arrow on the left border, pointing left.
		top := geometry.Clamp(target.CenterY(), tooltip.Top+arrowInset, tooltip.Bottom()-1-arrowInset)
		return geometry.Point{Top: top, Left: tooltip.Left}, RotationLeft
	case Left:
		// Tooltip left of the target; arrow on the right border, pointing right.
		top := geometry.Clamp(target.CenterY(), tooltip.Top+arrowInset, tooltip.Bottom()-1-arrowInset)
		return geometry.Point{Top: top, Left: tooltip.Right() - 1}, RotationRight
	default: // Bottom
		// Tooltip below the target; arrow on the top border, pointing up.
		left := geometry.Clamp(target.CenterX(), tooltip.Left+arrowInset, tooltip.Right()-1-arrowInset)
		return geometry.Point{Top: tooltip.Top, Left: left}, RotationUp
	}
}
