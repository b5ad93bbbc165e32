package geom

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Segment is a directed line segment from V0 to V1. V0 == V1 is allowed and
// represents a single point.
type Segment struct {
	V0, V1 Vector2
}

// Seg builds a segment from two endpoints.
func Seg(v0, v1 Vector2) Segment {
	return Segment{V0: v0, V1: v1}
}

// Direction returns V1 - V0.
func (s Segment) Direction() Vector2 {
	return s.V1.Sub(s.V0)
}

// Dot returns the scalar product of both directions.
func (s Segment) Dot(o Segment) float64 {
	return s.Direction().Dot(o.Direction())
}

// Cross returns the cross product of both directions.
func (s Segment) Cross(o Segment) float64 {
	return s.Direction().Cross(o.Direction())
}

// IsDegenerate reports whether the segment has zero length.
func (s Segment) IsDegenerate() bool {
	return s.Direction().LenSq() == 0
}

// ContainsColinear reports whether p lies within the segment's span.
// The caller must already know that p is on the segment's infinite line;
// for any other point the result is meaningless.
func (s Segment) ContainsColinear(p Vector2) bool {
	if s.V0.X != s.V1.X {
		return r1.IntervalFromPoint(s.V0.X).AddPoint(s.V1.X).Contains(p.X)
	}
	// vertical
	return r1.IntervalFromPoint(s.V0.Y).AddPoint(s.V1.Y).Contains(p.Y)
}

// Bounds returns the axis-aligned bounding box of the segment.
func (s Segment) Bounds() r2.Rect {
	return r2.RectFromPoints(s.V0.Point(), s.V1.Point())
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return s.V0.String() + "-" + s.V1.String()
}
