package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryRectNormalizes(t *testing.T) {
	b := NewBoundaryRect(Vec(5, -1), Vec(-3, 4))

	assert.Equal(t, -3.0, b.X0())
	assert.Equal(t, 5.0, b.X1())
	assert.Equal(t, -1.0, b.Y0())
	assert.Equal(t, 4.0, b.Y1())

	lo, hi := b.Corners()
	assert.Equal(t, Vec(-3, -1), lo)
	assert.Equal(t, Vec(5, 4), hi)
	assert.Equal(t, NewBoundaryRect(Vec(-3, -1), Vec(5, 4)), b)
}

func TestBoundaryRectContains(t *testing.T) {
	b := NewBoundaryRect(Vec(0, 0), Vec(2, 2))

	tests := []struct {
		name     string
		p        Vector2
		expected bool
	}{
		{"inside", Vec(1, 1), true},
		{"far corner (inclusive)", Vec(2, 2), true},
		{"near corner (inclusive)", Vec(0, 0), true},
		{"on edge", Vec(2, 0.5), true},
		{"outside", Vec(3, 3), false},
		{"outside left", Vec(-0.1, 1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Contains(tc.p))
		})
	}
}

func TestBoundaryRectClamp(t *testing.T) {
	b := NewBoundaryRect(Vec(0, 0), Vec(10, 5))
	assert.Equal(t, Vec(10, 3), b.Clamp(Vec(14, 3)))
	assert.Equal(t, Vec(0, 5), b.Clamp(Vec(-2, 9)))
	assert.Equal(t, Vec(4, 4), b.Clamp(Vec(4, 4)))
}

func TestCrashPositionScenarios(t *testing.T) {
	track := NewBoundaryRect(Vec(0, 0), Vec(2, 2))

	t.Run("exits through top", func(t *testing.T) {
		oldpos, newpos := Vec(1, 1), Vec(3, 4)
		require.False(t, track.Contains(newpos))

		cp, err := track.CrashPosition(oldpos, newpos)
		require.NoError(t, err)
		assert.Equal(t, 2.0, cp.Y)
		assert.InDelta(t, 1+1/1.5, cp.X, 1e-12)
	})

	t.Run("exits through right", func(t *testing.T) {
		oldpos, newpos := Vec(1, 1), Vec(4, 3)
		require.False(t, track.Contains(newpos))

		cp, err := track.CrashPosition(oldpos, newpos)
		require.NoError(t, err)
		assert.Equal(t, 2.0, cp.X)
		assert.InDelta(t, 1+2.0/3, cp.Y, 1e-12)
	})
}

func TestCrashPositionUnchanged(t *testing.T) {
	track := NewBoundaryRect(Vec(0, 0), Vec(10, 10))

	// stays inside
	cp, err := track.CrashPosition(Vec(1, 1), Vec(3, 4))
	require.NoError(t, err)
	assert.Equal(t, Vec(3, 4), cp)

	// already outside: nothing to clamp, even for vertical motion
	cp, err = track.CrashPosition(Vec(12, 1), Vec(12, 4))
	require.NoError(t, err)
	assert.Equal(t, Vec(12, 4), cp)
}

func TestCrossingCandidatesEdgeOrder(t *testing.T) {
	track := NewBoundaryRect(Vec(0, 0), Vec(2, 2))

	// passes exactly through the corner (2, 2): both the x1 and y1 candidates survive
	got, err := track.CrossingCandidates(Vec(1, 1), Vec(3, 3))
	require.NoError(t, err)
	assert.Equal(t, []Vector2{Vec(2, 2), Vec(2, 2)}, got)

	// the far side of the line is filtered by the motion's bounding box
	got, err = track.CrossingCandidates(Vec(1, 1), Vec(4, 2.5))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].X)
}

func TestCrossingCandidatesDegenerateMotion(t *testing.T) {
	track := NewBoundaryRect(Vec(0, 0), Vec(2, 2))

	_, err := track.CrossingCandidates(Vec(1, 1), Vec(1, 5))
	assert.ErrorIs(t, err, ErrDegenerateInput, "vertical")

	_, err = track.CrossingCandidates(Vec(1, 1), Vec(5, 1))
	assert.ErrorIs(t, err, ErrDegenerateInput, "horizontal")

	cp, err := track.CrashPosition(Vec(1, 1), Vec(1, 5))
	assert.ErrorIs(t, err, ErrDegenerateInput)
	assert.Equal(t, Vec(1, 5), cp, "input is returned untouched on error")
}

func TestFirstVersusNearestCrash(t *testing.T) {
	track := NewBoundaryRect(Vec(0, 0), Vec(10, 10))

	// Starting on the y0 edge and leaving through x0: the x0 candidate comes
	// first in edge order, while the y0 candidate is oldpos itself.
	oldpos, newpos := Vec(5, 0), Vec(-5, 5)

	got, err := track.CrossingCandidates(oldpos, newpos)
	require.NoError(t, err)
	assert.Equal(t, []Vector2{Vec(0, 2.5), Vec(5, 0)}, got)

	first, err := track.CrashPosition(oldpos, newpos)
	require.NoError(t, err)
	assert.Equal(t, Vec(0, 2.5), first)

	nearest, err := track.NearestCrashPosition(oldpos, newpos)
	require.NoError(t, err)
	assert.Equal(t, oldpos, nearest)

	// Through the exact corner both picks agree.
	first, err = track.CrashPosition(Vec(8, 8), Vec(12, 12))
	require.NoError(t, err)
	nearest, err = track.NearestCrashPosition(Vec(8, 8), Vec(12, 12))
	require.NoError(t, err)
	assert.Equal(t, Vec(10, 10), first)
	assert.Equal(t, first, nearest)
}
