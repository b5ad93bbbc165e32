// Package racer implements a grid racer in the style of the paper
// "racetrack" game. Each move the player nudges the car's velocity by at
// most one unit per axis, the car then travels by its velocity, and leaving
// the track ends the race at the exact crossing point.
package racer

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridracer/internal/config"
	"github.com/vovakirdan/gridracer/internal/core"
	"github.com/vovakirdan/gridracer/internal/geom"
	"github.com/vovakirdan/gridracer/internal/registry"
	"github.com/vovakirdan/gridracer/internal/world"
)

// Mode represents the game mode.
type Mode string

const (
	ModeSolo   Mode = "solo"
	ModeRivals Mode = "rivals"
)

// PlayerName is the entity name of the player car.
const PlayerName = "player"

// Game implements the grid racer.
type Game struct {
	mode Mode
	opts registry.Options

	cfg        config.RacerConfig
	cfgLoaded  bool
	difficulty *config.DifficultyManager
	logger     *log.Logger

	// Simulation
	world      *world.World
	track      geom.BoundaryRect
	finish     geom.Segment
	checkpoint geom.Segment
	player     world.Entity
	rivals     []world.Entity
	reported   map[world.Entity]bool

	// Input accumulated between two moves
	pending core.InputFrame

	tick             int
	moveTicker       int
	moves            int
	lapMoves         int // Moves since the last completed lap
	laps             int
	passedCheckpoint bool
	score            int
	trail            []geom.Vector2 // Player positions after each move

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	err      error // Simulation error that ended the race
}

func init() {
	registry.Register("racer", func(opts registry.Options) registry.Game {
		return New(ModeSolo, opts)
	})
	registry.Register("racer_rivals", func(opts registry.Options) registry.Game {
		return New(ModeRivals, opts)
	})
}

// New creates a racer that loads its configuration on the first Reset.
func New(mode Mode, opts registry.Options) *Game {
	return &Game{mode: mode, opts: opts, logger: opts.Logger}
}

// NewWithConfig creates a racer with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.RacerConfig) *Game {
	return &Game{mode: mode, cfg: cfg, cfgLoaded: true}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRivals {
		return "racer_rivals"
	}
	return "racer"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRivals {
		return "Grid Racer (Rivals)"
	}
	return "Grid Racer"
}

// Reset initializes/restarts the race.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.cfgLoaded {
		g.loadConfig()
	}
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.moveTicker = 0
	g.moves = 0
	g.lapMoves = 0
	g.laps = 0
	g.passedCheckpoint = false
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.err = nil
	g.pending = core.NewInputFrame()
	g.reported = make(map[world.Entity]bool)

	g.buildWorld()
}

// loadConfig reads the YAML config and applies the difficulty preset.
// A broken config falls back to the defaults so the race can still start.
func (g *Game) loadConfig() {
	cfg, err := config.LoadRacer(g.opts.ConfigPath)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("using default racer config", "err", err)
		}
		cfg = config.DefaultRacerConfig()
	}
	if g.opts.Difficulty != "" {
		if preset, err := config.ParsePreset(g.opts.Difficulty); err == nil {
			config.ApplyRacerPreset(&cfg, preset)
		}
	}
	g.cfg = cfg
	g.cfgLoaded = true
}

// buildWorld spawns the cars and installs the race systems.
func (g *Game) buildWorld() {
	t := g.cfg.Track
	g.track = geom.NewBoundaryRect(vec(t.Corner0), vec(t.Corner1))
	g.finish = geom.Seg(vec(t.Finish.From), vec(t.Finish.To))
	g.checkpoint = geom.Seg(vec(t.Checkpoint.From), vec(t.Checkpoint.To))

	boundary := world.NewBoundarySystem(g.track)
	if s := g.cfg.Boundary.Selection; s != "" {
		boundary.Selection = world.Selection(s)
	}
	if d := g.cfg.Boundary.Degenerate; d != "" {
		boundary.Degenerate = world.DegeneratePolicy(d)
	}

	g.world = world.New()
	world.InstallRaceSystems(g.world, boundary, g.logger)

	start := vec(g.cfg.Car.Start)
	g.player = g.world.Spawn(PlayerName, start, vec(g.cfg.Car.Velocity))
	g.trail = []geom.Vector2{start}

	g.rivals = g.rivals[:0]
	if g.mode == ModeRivals {
		for _, r := range g.cfg.Rivals {
			g.rivals = append(g.rivals, g.world.Spawn(r.Name, vec(r.Start), vec(r.Velocity)))
		}
	}
}

func vec(p config.Point) geom.Vector2 {
	return geom.Vec(p.X, p.Y)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused {
		return core.StepResult{State: g.State()}
	}

	// Steering between moves is buffered so quick taps are not lost
	g.pending.Merge(input)

	g.moveTicker++
	if g.moveTicker < g.difficulty.MoveInterval(g.cfg.Physics.MoveInterval, g.score, g.tick) {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	crashes := g.move()
	return core.StepResult{State: g.State(), Crashes: crashes}
}

// move applies the buffered steering and runs one world tick.
func (g *Game) move() []core.CrashEvent {
	g.steer()
	g.pending.Clear()

	from := g.position(g.player)
	if err := g.world.Process(); err != nil {
		if g.logger != nil {
			g.logger.Error("race stopped", "err", err)
		}
		g.err = err
		g.gameOver = true
		return nil
	}
	to := g.position(g.player)

	g.moves++
	g.lapMoves++
	if !to.Equal(from) {
		g.trail = append(g.trail, to)
		g.checkLap(from, to)
	}

	return g.collectCrashes()
}

// steer changes the player's velocity by the buffered input and
// enforces the current speed limit.
func (g *Game) steer() {
	v, _ := g.world.Velocities.Get(g.player)
	dx, dy := g.pending.Steering()
	vx := v.X + float64(dx)
	vy := v.Y + float64(dy)

	if g.pending.Has(core.ActionBrake) {
		vx = towardZero(vx)
		vy = towardZero(vy)
	}

	limit := float64(g.MaxSpeed())
	vx = core.ClampF(vx, -limit, limit)
	vy = core.ClampF(vy, -limit, limit)
	g.world.Velocities.Set(g.player, world.Velocity{Vector2: geom.Vec(vx, vy)})
}

func towardZero(v float64) float64 {
	switch {
	case v >= 1:
		return v - 1
	case v <= -1:
		return v + 1
	default:
		return 0
	}
}

// MaxSpeed returns the current per-axis speed limit.
func (g *Game) MaxSpeed() int {
	return g.difficulty.MaxSpeed(g.cfg.Physics.MaxSpeed, g.score, g.tick)
}

// checkLap counts a lap when the move crosses the finish line after the
// checkpoint has been passed.
func (g *Game) checkLap(from, to geom.Vector2) {
	motion := geom.Seg(from, to)
	crossedFinish := crosses(motion, g.finish)
	crossedCheckpoint := crosses(motion, g.checkpoint)

	if crossedFinish && g.passedCheckpoint {
		g.laps++
		g.score += g.cfg.Scoring.LapPoints + max(0, g.cfg.Scoring.ParMoves-g.lapMoves)
		g.lapMoves = 0
		g.passedCheckpoint = false
		if g.logger != nil {
			g.logger.Info("lap", "lap", g.laps, "score", g.score)
		}
		if g.cfg.Track.Laps > 0 && g.laps >= g.cfg.Track.Laps {
			g.won = true
		}
	}
	if crossedCheckpoint {
		g.passedCheckpoint = true
	}
}

// crosses reports whether a motion segment touches a track line.
// Parallel motion that cannot be classified counts as a miss.
func crosses(motion, line geom.Segment) bool {
	res, err := geom.Intersect(motion, line)
	if err != nil {
		return false
	}
	return res.Kind != geom.NoIntersection
}

// collectCrashes reports crashes recorded during the last world tick.
func (g *Game) collectCrashes() []core.CrashEvent {
	var events []core.CrashEvent
	for _, e := range g.world.Crashes.Entities() {
		if g.reported[e] {
			continue
		}
		g.reported[e] = true

		c, _ := g.world.Crashes.Get(e)
		name, _ := g.world.Names.Get(e)
		events = append(events, core.CrashEvent{
			Car:  string(name),
			Tick: c.Tick,
			X:    c.At.X,
			Y:    c.At.Y,
		})
		if e == g.player {
			g.gameOver = true
		}
	}
	return events
}

func (g *Game) position(e world.Entity) geom.Vector2 {
	p, _ := g.world.Positions.Get(e)
	return p.Vector2
}

func (g *Game) velocity(e world.Entity) geom.Vector2 {
	v, _ := g.world.Velocities.Get(e)
	return v.Vector2
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Err returns the simulation error that stopped the race, if any.
func (g *Game) Err() error {
	return g.err
}

// Laps returns the number of completed laps.
func (g *Game) Laps() int {
	return g.laps
}
