// Package geometry provides the cell-grid primitives shared by the tour
// placement and overlay packages. All coordinates are terminal cells:
// Top counts rows from the top of the viewport, Left counts columns from
// the left edge.
package geometry

// Point is a viewport position in cells.
type Point struct {
	Top  int
	Left int
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in viewport cell coordinates.
// It is a snapshot of on-screen geometry, recomputed on demand and never
// cached across frames.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// FromSize builds a rectangle from a top-left position and a size.
func FromSize(pos Point, size Size) Rect {
	return Rect{Top: pos.Top, Left: pos.Left, Width: size.Width, Height: size.Height}
}

// Bottom returns the exclusive bottom edge (Top + Height).
func (r Rect) Bottom() int { return r.Top + r.Height }

// Right returns the exclusive right edge (Left + Width).
func (r Rect) Right() int { return r.Left + r.Width }

// CenterX returns the horizontal midpoint column.
func (r Rect) CenterX() int { return r.Left + r.Width/2 }

// CenterY returns the vertical midpoint row.
func (r Rect) CenterY() int { return r.Top + r.Height/2 }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Expand grows the rectangle by pad cells on every side. A negative pad
// shrinks it; the result may be empty but Width/Height never go below zero.
func (r Rect) Expand(pad int) Rect {
	out := Rect{
		Top:    r.Top - pad,
		Left:   r.Left - pad,
		Width:  r.Width + 2*pad,
		Height: r.Height + 2*pad,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Intersects reports whether r and o share at least one cell. Touching
// edges do not count as an intersection.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.Top >= o.Top && r.Left >= o.Left &&
		r.Bottom() <= o.Bottom() && r.Right() <= o.Right()
}

// Clamp limits v to [lo, hi]. When the range is inverted (hi < lo, which
// happens when the constrained span is larger than the available space)
// the lower bound wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
