package world

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridracer/internal/geom"
)

// Default system priorities.
const (
	PriorityMovement = 1
	PriorityBoundary = 2
	PriorityLogging  = 3
	PriorityCommit   = 4
)

// MovementSystem proposes next = position + velocity for every moving entity.
type MovementSystem struct{}

func (MovementSystem) Name() string  { return "movement" }
func (MovementSystem) Priority() int { return PriorityMovement }

// Process implements System.
func (MovementSystem) Process(w *World) error {
	for _, e := range w.Velocities.Entities() {
		if w.Crashed(e) {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		vel, _ := w.Velocities.Get(e)
		w.NextPositions.Set(e, NextPosition{pos.Add(vel.Vector2)})
	}
	return nil
}

// Selection chooses among several boundary crossing candidates.
type Selection string

const (
	SelectFirst   Selection = "first"   // first candidate in edge order x0, x1, y0, y1
	SelectNearest Selection = "nearest" // candidate closest to the current position
)

// DegeneratePolicy decides what happens when the crash point cannot be
// extrapolated because the motion is parallel to an axis.
type DegeneratePolicy string

const (
	DegenerateClamp DegeneratePolicy = "clamp" // clamp the next position into the track
	DegenerateHold  DegeneratePolicy = "hold"  // stay at the current position
	DegenerateFail  DegeneratePolicy = "fail"  // abort the tick with the error
)

// BoundarySystem stops entities at the point where they would leave the track.
type BoundarySystem struct {
	Track      geom.BoundaryRect
	Selection  Selection
	Degenerate DegeneratePolicy
}

// NewBoundarySystem creates a boundary system with the default policies.
func NewBoundarySystem(track geom.BoundaryRect) *BoundarySystem {
	return &BoundarySystem{
		Track:      track,
		Selection:  SelectFirst,
		Degenerate: DegenerateClamp,
	}
}

func (b *BoundarySystem) Name() string  { return "boundary" }
func (b *BoundarySystem) Priority() int { return PriorityBoundary }

// Process implements System.
func (b *BoundarySystem) Process(w *World) error {
	for _, e := range w.NextPositions.Entities() {
		if w.Crashed(e) {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		next, _ := w.NextPositions.Get(e)
		if !b.Track.Contains(pos.Vector2) || b.Track.Contains(next.Vector2) {
			continue
		}

		at, err := b.crashPosition(pos.Vector2, next.Vector2)
		if err != nil {
			return fmt.Errorf("entity %d: %w", e, err)
		}
		w.NextPositions.Set(e, NextPosition{at})
		w.Crashes.Set(e, Crash{Tick: w.Tick(), At: at})
	}
	return nil
}

// crashPosition applies the selection and degenerate-motion policies.
func (b *BoundarySystem) crashPosition(pos, next geom.Vector2) (geom.Vector2, error) {
	var at geom.Vector2
	var err error
	if b.Selection == SelectNearest {
		at, err = b.Track.NearestCrashPosition(pos, next)
	} else {
		at, err = b.Track.CrashPosition(pos, next)
	}
	if err == nil || !errors.Is(err, geom.ErrDegenerateInput) {
		return at, err
	}

	switch b.Degenerate {
	case DegenerateHold:
		return pos, nil
	case DegenerateFail:
		return next, err
	default:
		// Axis-aligned motion leaves through the edge it points at, which
		// is exactly where the clamp lands.
		return b.Track.Clamp(next), nil
	}
}

// CommitSystem moves every entity to its next position and stops crashed ones.
type CommitSystem struct{}

func (CommitSystem) Name() string  { return "commit" }
func (CommitSystem) Priority() int { return PriorityCommit }

// Process implements System.
func (CommitSystem) Process(w *World) error {
	for _, e := range w.NextPositions.Entities() {
		next, _ := w.NextPositions.Get(e)
		w.Positions.Set(e, Position{next.Vector2})
		if w.Crashed(e) && w.Velocities.Has(e) {
			w.Velocities.Set(e, Velocity{})
		}
	}
	return nil
}

// LoggingSystem writes each entity's planned move at debug level.
// It runs before CommitSystem so both positions are still distinct.
type LoggingSystem struct {
	Logger *log.Logger
}

func (l LoggingSystem) Name() string  { return "logging" }
func (l LoggingSystem) Priority() int { return PriorityLogging }

// Process implements System.
func (l LoggingSystem) Process(w *World) error {
	if l.Logger == nil {
		return nil
	}
	for _, e := range w.NextPositions.Entities() {
		pos, _ := w.Positions.Get(e)
		next, _ := w.NextPositions.Get(e)
		name, _ := w.Names.Get(e)
		l.Logger.Debug("move",
			"tick", w.Tick(),
			"entity", string(name),
			"from", pos.Vector2,
			"to", next.Vector2,
			"crashed", w.Crashed(e),
		)
	}
	return nil
}

// InstallRaceSystems registers movement, boundary, logging and commit on w.
// A nil logger skips the logging system.
func InstallRaceSystems(w *World, boundary *BoundarySystem, logger *log.Logger) {
	w.AddSystem(MovementSystem{})
	w.AddSystem(boundary)
	if logger != nil {
		w.AddSystem(LoggingSystem{Logger: logger})
	}
	w.AddSystem(CommitSystem{})
}
