// Package geometry: point and circle primitives.
package geometry

import (
	"errors"
	"math"

	"github.com/katalvlaran/fixmat/numeric"
)

// ErrInvalidRadius is returned by NewCircle for a radius that is not a
// positive finite number.
var ErrInvalidRadius = errors.New("geometry: radius must be positive and finite")

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q. Complexity: O(1).
func Distance(p, q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Circle is a circle with a positive radius. Construct via NewCircle to get
// the radius validated; a zero Circle has zero radius and contains only its
// own center.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle at (x, y) with the given radius.
//
// Errors: ErrInvalidRadius when radius <= 0, NaN or ±Inf.
func NewCircle(x, y, radius float64) (Circle, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Circle{}, ErrInvalidRadius
	}

	return Circle{Center: Point{X: x, Y: y}, Radius: radius}, nil
}

// Contains reports whether p lies inside c or on its boundary (distance to
// the center <= radius). Complexity: O(1).
func (c Circle) Contains(p Point) bool {
	return Distance(p, c.Center) <= c.Radius
}

// Area returns πr². Complexity: O(1).
func (c Circle) Area() float64 {
	return numeric.Pi * c.Radius * c.Radius
}

// Circumference returns 2πr. Complexity: O(1).
func (c Circle) Circumference() float64 {
	return 2 * numeric.Pi * c.Radius
}
