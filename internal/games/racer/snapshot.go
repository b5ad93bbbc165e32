package racer

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/gridracer/internal/world"
)

// State names reported in snapshots.
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateCrashed = "crashed"
	StateWon     = "won"
	StateStopped = "stopped"
)

// CarSnapshot is the state of one car.
type CarSnapshot struct {
	Name    string
	X, Y    float64
	VX, VY  float64
	Crashed bool
}

// Snapshot captures the complete race state for determinism testing and replay.
type Snapshot struct {
	Tick       int
	Moves      int
	Laps       int
	Score      int
	Checkpoint bool // Checkpoint passed on the current lap
	State      string
	Cars       []CarSnapshot // Player first, then rivals in config order
}

// Snapshot returns the current race snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateStopped
	case g.won:
		state = StateWon
	case g.gameOver:
		state = StateCrashed
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:       g.tick,
		Moves:      g.moves,
		Laps:       g.laps,
		Score:      g.score,
		Checkpoint: g.passedCheckpoint,
		State:      state,
	}
	for _, e := range append([]world.Entity{g.player}, g.rivals...) {
		name, _ := g.world.Names.Get(e)
		p := g.position(e)
		v := g.velocity(e)
		snap.Cars = append(snap.Cars, CarSnapshot{
			Name:    string(name),
			X:       p.X,
			Y:       p.Y,
			VX:      v.X,
			VY:      v.Y,
			Crashed: g.world.Crashed(e),
		})
	}
	return snap
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putInt(1)
		} else {
			putInt(0)
		}
	}

	putInt(s.Tick)
	putInt(s.Moves)
	putInt(s.Laps)
	putInt(s.Score)
	putBool(s.Checkpoint)
	_, _ = d.WriteString(s.State)
	for _, c := range s.Cars {
		_, _ = d.WriteString(c.Name)
		putFloat(c.X)
		putFloat(c.Y)
		putFloat(c.VX)
		putFloat(c.VY)
		putBool(c.Crashed)
	}
	return d.Sum64()
}
