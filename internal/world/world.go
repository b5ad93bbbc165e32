// Package world is a small entity-component container with prioritized
// systems. It holds the moving cars of a race and runs the per-tick
// pipeline: movement, boundary clamping, commit and logging.
package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridracer/internal/geom"
)

// Entity identifies a world object.
type Entity uint32

// Position is where an entity is at the start of a tick.
type Position struct {
	geom.Vector2
}

// NextPosition is where an entity wants to be at the end of a tick.
type NextPosition struct {
	geom.Vector2
}

// Velocity is the displacement applied per tick.
type Velocity struct {
	geom.Vector2
}

// Crash records where and when an entity hit the boundary.
type Crash struct {
	Tick int
	At   geom.Vector2
}

// Name is a display label for logging and rendering.
type Name string

// System processes the world once per tick.
type System interface {
	Name() string
	Priority() int // Lower values run first
	Process(w *World) error
}

// World holds all entities, their components and the systems that update them.
type World struct {
	mu     sync.Mutex
	nextID Entity
	tick   int

	Positions     *Store[Position]
	NextPositions *Store[NextPosition]
	Velocities    *Store[Velocity]
	Crashes       *Store[Crash]
	Names         *Store[Name]

	systems []System
}

// New creates an empty world.
func New() *World {
	return &World{
		nextID:        1,
		Positions:     NewStore[Position](),
		NextPositions: NewStore[NextPosition](),
		Velocities:    NewStore[Velocity](),
		Crashes:       NewStore[Crash](),
		Names:         NewStore[Name](),
	}
}

// CreateEntity reserves a new entity ID.
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	return id
}

// Spawn creates a moving entity at pos with velocity vel.
// Its next position starts equal to pos.
func (w *World) Spawn(name string, pos, vel geom.Vector2) Entity {
	e := w.CreateEntity()
	w.Names.Set(e, Name(name))
	w.Positions.Set(e, Position{pos})
	w.NextPositions.Set(e, NextPosition{pos})
	w.Velocities.Set(e, Velocity{vel})
	return e
}

// Destroy removes every component of an entity.
func (w *World) Destroy(e Entity) {
	w.Positions.Remove(e)
	w.NextPositions.Remove(e)
	w.Velocities.Remove(e)
	w.Crashes.Remove(e)
	w.Names.Remove(e)
}

// Clear removes all entities but keeps the systems.
func (w *World) Clear() {
	w.mu.Lock()
	w.nextID = 1
	w.tick = 0
	w.mu.Unlock()

	w.Positions.Clear()
	w.NextPositions.Clear()
	w.Velocities.Clear()
	w.Crashes.Clear()
	w.Names.Clear()
}

// AddSystem registers a system. Systems with equal priority keep
// registration order.
func (w *World) AddSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in run order.
func (w *World) Systems() []System {
	w.mu.Lock()
	defer w.mu.Unlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Tick returns the number of completed Process calls.
func (w *World) Tick() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tick
}

// Process runs every system once, in priority order. The first failing
// system stops the tick and its error is returned.
func (w *World) Process() error {
	for _, s := range w.Systems() {
		if err := s.Process(w); err != nil {
			return fmt.Errorf("world: system %s: %w", s.Name(), err)
		}
	}
	w.mu.Lock()
	w.tick++
	w.mu.Unlock()
	return nil
}

// Crashed reports whether the entity has hit the boundary.
func (w *World) Crashed(e Entity) bool {
	return w.Crashes.Has(e)
}
