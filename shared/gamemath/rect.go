package gamemath

// Rect is an axis-aligned rectangle in world units. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a Rect with the given origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ContainsPoint reports whether (x, y) lies inside r using half-open
// semantics: the left and top edges are inside, the right and bottom are not.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and o share any interior area.
func (r Rect) Intersects(o Rect) bool {
	return SpansOverlap(r.X, r.Right(), o.X, o.Right()) &&
		SpansOverlap(r.Y, r.Bottom(), o.Y, o.Bottom())
}

// SpansOverlap reports whether the half-open spans [a0, a1) and [b0, b1)
// share a non-empty interval. Touching spans do not overlap.
func SpansOverlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// CircleInsideRect reports whether a circle is fully contained by rect: its
// center is inside and no part of its extent crosses an edge. Mere overlap is
// not enough.
func CircleInsideRect(cx, cy, radius float64, rect Rect) bool {
	if !rect.ContainsPoint(cx, cy) {
		return false
	}
	return cx-radius >= rect.X && cx+radius <= rect.Right() &&
		cy-radius >= rect.Y && cy+radius <= rect.Bottom()
}
