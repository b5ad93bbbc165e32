package geom

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Epsilon is the absolute tolerance below which a cross product is treated
// as zero. It is not scaled by segment length.
const Epsilon = 1e-8

// Kind classifies the relationship between two segments.
type Kind uint8

const (
	NoIntersection    Kind = iota // segments are disjoint
	PointIntersection             // segments meet in a single point
	OverlapSegment                // colinear segments share a sub-segment
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case PointIntersection:
		return "point"
	case OverlapSegment:
		return "overlap"
	default:
		return "unknown"
	}
}

// Intersection is the result of Intersect. For PointIntersection A == B;
// for OverlapSegment A and B are the ends of the shared sub-segment.
type Intersection struct {
	Kind Kind
	A, B Vector2
}

func none() Intersection {
	return Intersection{Kind: NoIntersection}
}

func point(p Vector2) Intersection {
	return Intersection{Kind: PointIntersection, A: p, B: p}
}

func overlap(a, b Vector2) Intersection {
	return Intersection{Kind: OverlapSegment, A: a, B: b}
}

// Points returns the distinct points describing the result: none, one or two.
func (r Intersection) Points() []Vector2 {
	switch r.Kind {
	case PointIntersection:
		return []Vector2{r.A}
	case OverlapSegment:
		return []Vector2{r.A, r.B}
	default:
		return nil
	}
}

// Segment returns the overlap as a segment. Only meaningful for OverlapSegment.
func (r Intersection) Segment() Segment {
	return Seg(r.A, r.B)
}

// SameSet reports whether both results have the same kind and describe the
// same point set, regardless of endpoint order.
func (r Intersection) SameSet(o Intersection) bool {
	if r.Kind != o.Kind {
		return false
	}
	switch r.Kind {
	case PointIntersection:
		return r.A.Equal(o.A)
	case OverlapSegment:
		return (r.A.Equal(o.A) && r.B.Equal(o.B)) || (r.A.Equal(o.B) && r.B.Equal(o.A))
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (r Intersection) String() string {
	switch r.Kind {
	case PointIntersection:
		return fmt.Sprintf("point %s", r.A)
	case OverlapSegment:
		return fmt.Sprintf("overlap %s-%s", r.A, r.B)
	default:
		return r.Kind.String()
	}
}

// Intersect classifies the intersection of two segments.
//
// Skew segments meet in at most one point. Parallel segments meet only if
// they are colinear, in which case the shared span is a point or a
// sub-segment. Touching at an endpoint counts as intersecting. The
// classification does not depend on argument order.
//
// The only error is ErrDegenerateInput, which cannot occur for finite input
// but guards the colinear parametrization against a zero direction.
func Intersect(seg1, seg2 Segment) (Intersection, error) {
	u := seg1.Direction()
	v := seg2.Direction()
	w := seg1.V0.Sub(seg2.V0)
	d := u.Cross(v)

	if math.Abs(d) >= Epsilon {
		// si parametrizes seg1, ti parametrizes seg2
		si := v.Cross(w) / d
		if si < 0 || si > 1 {
			return none(), nil
		}
		ti := u.Cross(w) / d
		if ti < 0 || ti > 1 {
			return none(), nil
		}
		return point(seg1.V0.Add(u.Scale(si))), nil
	}

	// Parallel. Colinear only if w is parallel to both directions.
	if math.Abs(u.Cross(w)) > Epsilon || math.Abs(v.Cross(w)) > Epsilon {
		return none(), nil
	}

	du, dv := u.LenSq(), v.LenSq()
	switch {
	case du == 0 && dv == 0:
		if seg1.V0.Equal(seg2.V0) {
			return point(seg1.V0), nil
		}
		return none(), nil
	case du == 0:
		if seg2.ContainsColinear(seg1.V0) {
			return point(seg1.V0), nil
		}
		return none(), nil
	case dv == 0:
		if seg1.ContainsColinear(seg2.V0) {
			return point(seg2.V0), nil
		}
		return none(), nil
	}

	return colinearOverlap(seg1, seg2)
}

// colinearOverlap clips seg1 against seg2's parametrization.
func colinearOverlap(seg1, seg2 Segment) (Intersection, error) {
	v := seg2.Direction()
	t0, err := param(seg1.V0.Sub(seg2.V0), v)
	if err != nil {
		return none(), err
	}
	t1, err := param(seg1.V1.Sub(seg2.V0), v)
	if err != nil {
		return none(), err
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > 1 || t1 < 0 {
		return none(), nil
	}
	t0 = math.Max(0, t0)
	t1 = math.Min(1, t1)

	start := seg2.V0.Add(v.Scale(t0))
	if t0 == t1 {
		return point(start), nil
	}
	return overlap(start, seg2.V0.Add(v.Scale(t1))), nil
}

// param returns t such that w == t*v, assuming w is parallel to v.
// The x component is preferred, y is used when v is vertical.
func param(w, v Vector2) (float64, error) {
	if v.X != 0 {
		return w.X / v.X, nil
	}
	if v.Y != 0 {
		return w.Y / v.Y, nil
	}
	return 0, fmt.Errorf("geom: parametrize along %s: %w", v, ErrDegenerateInput)
}

// SegmentPair is one input to IntersectAll.
type SegmentPair struct {
	A, B Segment
}

// IntersectAll intersects every pair concurrently. Results keep the order of
// pairs. The first error cancels the remaining work.
func IntersectAll(ctx context.Context, pairs []SegmentPair) ([]Intersection, error) {
	results := make([]Intersection, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Intersect(p.A, p.B)
			if err != nil {
				return fmt.Errorf("geom: pair %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
