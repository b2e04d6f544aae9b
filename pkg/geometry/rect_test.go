package geometry

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{Top: 4, Left: 10, Width: 20, Height: 6}

	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %v, want 10", r.Bottom())
	}
	if r.Right() != 30 {
		t.Errorf("Right() = %v, want 30", r.Right())
	}
	if r.CenterX() != 20 {
		t.Errorf("CenterX() = %v, want 20", r.CenterX())
	}
	if r.CenterY() != 7 {
		t.Errorf("CenterY() = %v, want 7", r.CenterY())
	}
}

func TestRectExpand(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		pad  int
		want Rect
	}{
		{
			name: "grow all sides",
			rect: Rect{Top: 5, Left: 5, Width: 10, Height: 4},
			pad:  2,
			want: Rect{Top: 3, Left: 3, Width: 14, Height: 8},
		},
		{
			name: "zero pad is identity",
			rect: Rect{Top: 1, Left: 2, Width: 3, Height: 4},
			pad:  0,
			want: Rect{Top: 1, Left: 2, Width: 3, Height: 4},
		},
		{
			name: "may leave the viewport",
			rect: Rect{Top: 0, Left: 0, Width: 4, Height: 2},
			pad:  3,
			want: Rect{Top: -3, Left: -3, Width: 10, Height: 8},
		},
		{
			name: "negative pad never yields negative spans",
			rect: Rect{Top: 5, Left: 5, Width: 4, Height: 2},
			pad:  -3,
			want: Rect{Top: 8, Left: 8, Width: 0, Height: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Expand(tt.pad); got != tt.want {
				t.Errorf("Expand(%d) = %+v, want %+v", tt.pad, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{Top: 10, Left: 10, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{
			name:  "overlapping corner",
			other: Rect{Top: 15, Left: 15, Width: 10, Height: 10},
			want:  true,
		},
		{
			name:  "contained",
			other: Rect{Top: 12, Left: 12, Width: 2, Height: 2},
			want:  true,
		},
		{
			name:  "touching right edge does not count",
			other: Rect{Top: 10, Left: 20, Width: 5, Height: 10},
			want:  false,
		},
		{
			name:  "touching bottom edge does not count",
			other: Rect{Top: 20, Left: 10, Width: 10, Height: 5},
			want:  false,
		},
		{
			name:  "disjoint",
			other: Rect{Top: 40, Left: 40, Width: 3, Height: 3},
			want:  false,
		},
		{
			name:  "empty rect never intersects",
			other: Rect{Top: 12, Left: 12, Width: 0, Height: 5},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectWithin(t *testing.T) {
	viewport := Rect{Top: 0, Left: 0, Width: 80, Height: 24}

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{
			name: "fully inside",
			rect: Rect{Top: 2, Left: 2, Width: 10, Height: 5},
			want: true,
		},
		{
			name: "flush with all edges",
			rect: Rect{Top: 0, Left: 0, Width: 80, Height: 24},
			want: true,
		},
		{
			name: "spills past the right edge",
			rect: Rect{Top: 0, Left: 75, Width: 10, Height: 5},
			want: false,
		},
		{
			name: "negative top",
			rect: Rect{Top: -1, Left: 10, Width: 10, Height: 5},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Within(viewport); got != tt.want {
				t.Errorf("Within(viewport) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{name: "inside range", v: 5, lo: 0, hi: 10, want: 5},
		{name: "below range", v: -3, lo: 0, hi: 10, want: 0},
		{name: "above range", v: 15, lo: 0, hi: 10, want: 10},
		{name: "inverted range prefers lower bound", v: 5, lo: 16, hi: 2, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
