package geom

import (
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// BoundaryRect is an axis-aligned rectangle that moving entities must stay
// inside. It is normalized at construction (X0 <= X1, Y0 <= Y1) and
// read-only afterwards.
type BoundaryRect struct {
	rect r2.Rect
}

// NewBoundaryRect builds a boundary from any two opposite corners.
func NewBoundaryRect(a, b Vector2) BoundaryRect {
	return BoundaryRect{rect: r2.RectFromPoints(a.Point(), b.Point())}
}

func (b BoundaryRect) X0() float64 { return b.rect.X.Lo }
func (b BoundaryRect) X1() float64 { return b.rect.X.Hi }
func (b BoundaryRect) Y0() float64 { return b.rect.Y.Lo }
func (b BoundaryRect) Y1() float64 { return b.rect.Y.Hi }

// Corners returns the minimum and maximum corner.
func (b BoundaryRect) Corners() (lo, hi Vector2) {
	return FromPoint(b.rect.Lo()), FromPoint(b.rect.Hi())
}

// Contains reports whether p lies inside or on the boundary.
func (b BoundaryRect) Contains(p Vector2) bool {
	return b.rect.ContainsPoint(p.Point())
}

// Clamp returns the point of the rectangle closest to p.
func (b BoundaryRect) Clamp(p Vector2) Vector2 {
	return Vector2{X: b.rect.X.ClampPoint(p.X), Y: b.rect.Y.ClampPoint(p.Y)}
}

// CrossingCandidates extrapolates the line through oldpos and newpos onto
// the four edges, in edge order x0, x1, y0, y1. A candidate is kept only if
// it lies on the edge itself and within the bounding box of the motion.
//
// Purely vertical or horizontal motion has no finite slope or inverse slope
// and is reported as ErrDegenerateInput.
func (b BoundaryRect) CrossingCandidates(oldpos, newpos Vector2) ([]Vector2, error) {
	dx := newpos.X - oldpos.X
	if dx == 0 {
		return nil, fmt.Errorf("geom: vertical motion %s->%s: %w", oldpos, newpos, ErrDegenerateInput)
	}
	m := (newpos.Y - oldpos.Y) / dx
	if m == 0 {
		return nil, fmt.Errorf("geom: horizontal motion %s->%s: %w", oldpos, newpos, ErrDegenerateInput)
	}

	x0, x1 := b.rect.X.Lo, b.rect.X.Hi
	y0, y1 := b.rect.Y.Lo, b.rect.Y.Hi

	motion := Seg(oldpos, newpos).Bounds()
	candidates := make([]Vector2, 0, 4)
	keep := func(p Vector2, span r1.Interval, along float64) {
		if span.Contains(along) && motion.ContainsPoint(p.Point()) {
			candidates = append(candidates, p)
		}
	}

	cy0 := oldpos.Y + m*(x0-oldpos.X)
	keep(Vector2{X: x0, Y: cy0}, b.rect.Y, cy0)
	cy1 := oldpos.Y + m*(x1-oldpos.X)
	keep(Vector2{X: x1, Y: cy1}, b.rect.Y, cy1)
	cx0 := oldpos.X + (y0-oldpos.Y)/m
	keep(Vector2{X: cx0, Y: y0}, b.rect.X, cx0)
	cx1 := oldpos.X + (y1-oldpos.Y)/m
	keep(Vector2{X: cx1, Y: y1}, b.rect.X, cx1)

	return candidates, nil
}

// CrashPosition returns where an entity moving from oldpos to newpos
// leaves the boundary. If oldpos is inside and newpos is not, the first
// crossing candidate in edge order is returned; that is not necessarily
// the one nearest to oldpos. Otherwise newpos is returned unchanged.
func (b BoundaryRect) CrashPosition(oldpos, newpos Vector2) (Vector2, error) {
	return b.crash(oldpos, newpos, func(c []Vector2) Vector2 { return c[0] })
}

// NearestCrashPosition is CrashPosition but picks the crossing closest to
// oldpos when the motion passes through a corner region.
func (b BoundaryRect) NearestCrashPosition(oldpos, newpos Vector2) (Vector2, error) {
	return b.crash(oldpos, newpos, func(c []Vector2) Vector2 {
		best := c[0]
		for _, p := range c[1:] {
			if p.Sub(oldpos).LenSq() < best.Sub(oldpos).LenSq() {
				best = p
			}
		}
		return best
	})
}

func (b BoundaryRect) crash(oldpos, newpos Vector2, pick func([]Vector2) Vector2) (Vector2, error) {
	if !b.Contains(oldpos) || b.Contains(newpos) {
		return newpos, nil
	}
	candidates, err := b.CrossingCandidates(oldpos, newpos)
	if err != nil {
		return newpos, err
	}
	if len(candidates) == 0 {
		return newpos, fmt.Errorf("geom: no crossing for %s->%s: %w", oldpos, newpos, ErrDegenerateInput)
	}
	return pick(candidates), nil
}

// String implements fmt.Stringer.
func (b BoundaryRect) String() string {
	lo, hi := b.Corners()
	return fmt.Sprintf("[%s %s]", lo, hi)
}
