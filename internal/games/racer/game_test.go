package racer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridracer/internal/config"
	"github.com/vovakirdan/gridracer/internal/core"
	"github.com/vovakirdan/gridracer/internal/geom"
	"github.com/vovakirdan/gridracer/internal/registry"
	"github.com/vovakirdan/gridracer/internal/world"
)

// testConfig moves once per tick with no difficulty scaling.
func testConfig() config.RacerConfig {
	cfg := config.DefaultRacerConfig()
	cfg.Physics.MoveInterval = 1
	cfg.Physics.MaxSpeed = 12
	cfg.Difficulty.Enabled = false
	return cfg
}

func newGame(t *testing.T, mode Mode, cfg config.RacerConfig) *Game {
	t.Helper()
	require.NoError(t, cfg.Validate())
	g := NewWithConfig(mode, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// drive sets the player's velocity and runs one move.
func drive(g *Game, vx, vy float64) core.StepResult {
	g.world.Velocities.Set(g.player, world.Velocity{Vector2: geom.Vec(vx, vy)})
	return g.Step(core.NewInputFrame())
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("racer"))
	assert.True(t, registry.Exists("racer_rivals"))

	g, err := registry.Create("racer_rivals", registry.Options{})
	require.NoError(t, err)
	assert.Equal(t, "racer_rivals", g.ID())
	assert.Equal(t, "Grid Racer (Rivals)", g.Title())
}

func TestSteeringAccelerates(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())

	g.Step(press(core.ActionRight))
	assert.Equal(t, geom.Vec(27, 16), g.position(g.player))

	g.Step(press(core.ActionRight, core.ActionUp))
	assert.Equal(t, geom.Vec(2, -1), g.velocity(g.player))
	assert.Equal(t, geom.Vec(29, 15), g.position(g.player))

	// inertia keeps the car moving without input
	g.Step(core.NewInputFrame())
	assert.Equal(t, geom.Vec(31, 14), g.position(g.player))
}

func TestSpeedLimitAndBrake(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.MaxSpeed = 2
	cfg.Car.Start = config.Point{X: 5, Y: 10}
	g := newGame(t, ModeSolo, cfg)

	for range 4 {
		g.Step(press(core.ActionRight))
	}
	assert.Equal(t, geom.Vec(2, 0), g.velocity(g.player))

	g.Step(press(core.ActionBrake))
	assert.Equal(t, geom.Vec(1, 0), g.velocity(g.player))
}

func TestStepsBufferInputUntilMove(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.MoveInterval = 3
	g := newGame(t, ModeSolo, cfg)

	g.Step(press(core.ActionDown))
	g.Step(core.NewInputFrame())
	assert.Equal(t, 0, g.moves)

	g.Step(core.NewInputFrame())
	assert.Equal(t, 1, g.moves)
	assert.Equal(t, geom.Vec(26, 17), g.position(g.player))
}

func TestLapCounting(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())

	drive(g, 8, 0) // over the finish line before the checkpoint
	assert.Equal(t, 0, g.Laps())

	drive(g, 0, -12)
	drive(g, -8, 0) // checkpoint at (30, 4)
	assert.True(t, g.passedCheckpoint)

	drive(g, 0, 12)
	drive(g, 8, 0) // finish at (30, 16)

	assert.Equal(t, 1, g.Laps())
	assert.False(t, g.passedCheckpoint)
	assert.Equal(t, 100+40-5, g.State().Score)
	assert.False(t, g.State().GameOver)
}

func TestFinishingRaceWins(t *testing.T) {
	cfg := testConfig()
	cfg.Track.Laps = 1
	g := newGame(t, ModeSolo, cfg)

	// clockwise this time
	drive(g, 0, -12)
	drive(g, 8, 0) // checkpoint at (30, 4)
	drive(g, 0, 12)
	drive(g, -8, 0) // finish at (30, 16)

	assert.Equal(t, 1, g.Laps())
	assert.Equal(t, 100+40-4, g.State().Score)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateWon, g.Snapshot().State)
}

func TestCrashEndsRace(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())

	res := drive(g, 4, 8)

	require.Len(t, res.Crashes, 1)
	crash := res.Crashes[0]
	assert.Equal(t, PlayerName, crash.Car)
	assert.Equal(t, 0, crash.Tick)
	assert.InDelta(t, 28.0, crash.X, geom.Epsilon)
	assert.Equal(t, 20.0, crash.Y)

	assert.True(t, res.State.GameOver)
	assert.Equal(t, StateCrashed, g.Snapshot().State)

	// no further moves after the crash
	before := g.Snapshot()
	g.Step(press(core.ActionUp))
	after := g.Snapshot()
	assert.Equal(t, before.Cars, after.Cars)
}

func TestAxisAlignedCrashClamps(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())

	res := drive(g, 0, 8)

	require.Len(t, res.Crashes, 1)
	assert.Equal(t, geom.Vec(26, 20), g.position(g.player))
	assert.NoError(t, g.Err())
}

func TestDegenerateFailStopsRace(t *testing.T) {
	cfg := testConfig()
	cfg.Boundary.Degenerate = "fail"
	g := newGame(t, ModeSolo, cfg)

	res := drive(g, 0, 8)

	assert.Empty(t, res.Crashes)
	assert.ErrorIs(t, g.Err(), geom.ErrDegenerateInput)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateStopped, g.Snapshot().State)
}

func TestRivalsCrashIndependently(t *testing.T) {
	g := newGame(t, ModeRivals, testConfig())
	require.Len(t, g.rivals, 2)

	var crashes []core.CrashEvent
	for range 17 {
		res := g.Step(core.NewInputFrame())
		crashes = append(crashes, res.Crashes...)
	}

	require.Len(t, crashes, 2)
	assert.Equal(t, core.CrashEvent{Car: "red", Tick: 15, X: 35, Y: 0}, crashes[0])
	assert.Equal(t, core.CrashEvent{Car: "blue", Tick: 16, X: 40, Y: 20}, crashes[1])

	assert.False(t, g.State().GameOver)
	assert.Equal(t, geom.Vec(26, 16), g.position(g.player))

	snap := g.Snapshot()
	require.Len(t, snap.Cars, 3)
	assert.Equal(t, PlayerName, snap.Cars[0].Name)
	assert.True(t, snap.Cars[1].Crashed)
	assert.True(t, snap.Cars[2].Crashed)
}

func TestSoloHasNoRivals(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())
	assert.Empty(t, g.rivals)
	assert.Len(t, g.Snapshot().Cars, 1)
}

func TestRestartAfterCrash(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())
	drive(g, 0, 8)
	require.True(t, g.State().GameOver)

	g.Step(press(core.ActionRestart))

	assert.False(t, g.State().GameOver)
	assert.Equal(t, geom.Vec(26, 16), g.position(g.player))
	assert.Equal(t, 0, g.moves)
	assert.False(t, g.world.Crashed(g.player))
}

func TestPauseStopsMoves(t *testing.T) {
	g := newGame(t, ModeSolo, testConfig())

	g.Step(press(core.ActionPause))
	assert.True(t, g.State().Paused)
	g.Step(press(core.ActionRight))
	assert.Equal(t, 0, g.moves)

	// unpausing resumes within the same tick
	g.Step(press(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, 1, g.moves)
}

func TestDeterminism(t *testing.T) {
	// one key per move window of the default ten-tick interval
	steering := func(i int) core.InputFrame {
		if i%10 != 0 {
			return core.NewInputFrame()
		}
		switch (i / 10) % 5 {
		case 0, 1:
			return press(core.ActionRight)
		case 2:
			return press(core.ActionUp)
		case 3:
			return press(core.ActionDown)
		default:
			return press(core.ActionBrake)
		}
	}

	run := func(input func(int) core.InputFrame) Snapshot {
		g := newGame(t, ModeRivals, config.DefaultRacerConfig())
		for i := range 300 {
			g.Step(input(i))
		}
		return g.Snapshot()
	}

	s1, s2 := run(steering), run(steering)
	assert.Equal(t, s1, s2)
	assert.Equal(t, s1.Hash(), s2.Hash())

	s3 := run(func(int) core.InputFrame { return press(core.ActionLeft) })
	assert.NotEqual(t, s1.Cars[0], s3.Cars[0])
	assert.NotEqual(t, s1.Hash(), s3.Hash())
}

func TestRender(t *testing.T) {
	g := newGame(t, ModeRivals, testConfig())
	screen := core.NewScreen(64, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, screen.Row(0), "Grid Racer (Rivals)")
	assert.Contains(t, out, string(PlayerChar))
	assert.Contains(t, out, string(FinishChar))
	assert.Contains(t, out, string(CheckpointChar))

	// player at (26, 16) on a 60x20 track scaled into 64x22 cells
	x, y := g.viewport(screen).Project(26, 16)
	assert.Equal(t, core.Cell{Rune: PlayerChar, Color: core.ColorBrightGreen}, screen.GetCell(x, y))

	small := core.NewScreen(30, 6)
	g.Render(small)
	assert.Contains(t, small.String(), "Window too small")
}
