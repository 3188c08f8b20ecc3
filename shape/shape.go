// Package shape models a closed set of plane shapes as a sum type.
//
// Shape is an interface with an unexported method, so the only
// implementations are Circle, Rect and Triangle. Code that handles
// shapes switches on the concrete type, or uses Match, which makes
// the caller provide a case for every variant.
package shape

import "math"

// Shape is one of Circle, Rect or Triangle.
type Shape interface {
	Area() float64
	Perimeter() float64

	shape()
}

// Circle is a circle with the given radius.
type Circle struct {
	Radius float64
}

// Rect is a rectangle with the given side lengths.
type Rect struct {
	Width, Height float64
}

// Triangle is a triangle with side lengths A, B and C.
// The sides are assumed to satisfy the triangle inequality.
type Triangle struct {
	A, B, C float64
}

var (
	_ Shape = Circle{}
	_ Shape = Rect{}
	_ Shape = Triangle{}
)

func (Circle) shape()   {}
func (Rect) shape()     {}
func (Triangle) shape() {}

// Area of a circle is pi r squared.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Perimeter is the circumference.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.Radius
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

func (r Rect) Perimeter() float64 {
	return 2*r.Width + 2*r.Height
}

// Area uses Heron's formula.
func (t Triangle) Area() float64 {
	s := (t.A + t.B + t.C) / 2
	return math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
}

func (t Triangle) Perimeter() float64 {
	return t.A + t.B + t.C
}

// Match performs an exhaustive match on s, calling the function
// for its variant. It panics if s is nil.
func Match(s Shape, circle func(Circle), rect func(Rect), triangle func(Triangle)) {
	switch v := s.(type) {
	case Circle:
		circle(v)
	case Rect:
		rect(v)
	case Triangle:
		triangle(v)
	default:
		panic("unhandled case in Match")
	}
}

// Name returns the variant name of s: "circle", "rectangle" or "triangle".
func Name(s Shape) (name string) {
	Match(s,
		func(Circle) { name = "circle" },
		func(Rect) { name = "rectangle" },
		func(Triangle) { name = "triangle" },
	)
	return
}
