package types

import "math"

// Rect is an axis-aligned bounding rectangle in 2D space, inclusive on
// all sides. The zero value is the degenerate rectangle at the origin,
// which Valid reports as valid — use EmptyRect and Expand to build one
// incrementally.
type Rect struct {
	Min Point
	Max Point
}

// EmptyRect returns a rectangle with inverted bounds, ready to be grown
// via Expand.
func EmptyRect() Rect {
	return Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Expand grows the rectangle to include p, returning the updated value.
func (r Rect) Expand(p Point) Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Valid reports whether the rectangle encloses at least one point.
func (r Rect) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies within the rectangle, inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
