// Package geom is the 2D geometry kernel used by the racer: vectors,
// segments, segment intersection and the rectangular track boundary.
// All types are immutable values and safe for concurrent use.
package geom

import (
	"fmt"

	"github.com/golang/geo/r2"
	"golang.org/x/exp/constraints"
)

// Scalar is any numeric type that can be promoted to a coordinate.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float64
}

// Vec builds a Vector2 from any numeric coordinate pair.
func Vec[T Scalar](x, y T) Vector2 {
	return Vector2{X: float64(x), Y: float64(y)}
}

// FromPoint converts an r2.Point.
func FromPoint(p r2.Point) Vector2 {
	return Vector2{X: p.X, Y: p.Y}
}

// Point converts to an r2.Point.
func (v Vector2) Point() r2.Point {
	return r2.Point{X: v.X, Y: v.Y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns s * v.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: s * v.X, Y: s * v.Y}
}

// Dot returns the scalar product.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Cross returns the z component of the 3D cross product of v and o,
// which equals v.Perp().Dot(o).
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// LenSq returns the squared length.
func (v Vector2) LenSq() float64 {
	return v.Dot(v)
}

// Equal reports exact component-wise equality.
func (v Vector2) Equal(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Axis returns the component at index i (0 = X, 1 = Y).
func (v Vector2) Axis(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	default:
		return 0, fmt.Errorf("geom: axis %d: %w", i, ErrOutOfRange)
	}
}

// String implements fmt.Stringer.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
