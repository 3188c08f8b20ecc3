// Package geom has a couple of plain geometric value types.
package geom

import "math"

// Point is a point on the integer grid.
type Point struct {
	X, Y int
}

// DistanceFromOrigin returns the Euclidean distance from (0, 0).
func (p Point) DistanceFromOrigin() float64 {
	x, y := float64(p.X), float64(p.Y)
	return math.Sqrt(x*x + y*y)
}

// Rectangle is an axis-aligned rectangle with whole-number sides.
// Arithmetic on the sides is unchecked and wraps on overflow.
type Rectangle struct {
	Width, Height uint
}

func (r Rectangle) Area() uint {
	return r.Width * r.Height
}

func (r Rectangle) Perimeter() uint {
	return 2 * (r.Width + r.Height)
}

func (r Rectangle) IsSquare() bool {
	return r.Width == r.Height
}

// CanHold reports whether other fits inside r without rotating it.
func (r Rectangle) CanHold(other Rectangle) bool {
	return other.Width <= r.Width && other.Height <= r.Height
}

// Scale multiplies both sides by factor, modifying r.
func (r *Rectangle) Scale(factor uint) {
	r.Width *= factor
	r.Height *= factor
}
