// Package config provides YAML-based race configuration loading and
// difficulty management for gridracer.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid racer config")

// Point is a position or velocity in track units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LineConfig is a segment drawn across the track.
type LineConfig struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// RacerConfig contains all configuration for the grid racer.
type RacerConfig struct {
	Track      TrackConfig      `yaml:"track"`
	Car        CarConfig        `yaml:"car"`
	Rivals     []RivalConfig    `yaml:"rivals"`
	Physics    RacerPhysics     `yaml:"physics"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TrackConfig defines the racing area.
type TrackConfig struct {
	Corner0    Point      `yaml:"corner0"`
	Corner1    Point      `yaml:"corner1"`
	Finish     LineConfig `yaml:"finish"`
	Checkpoint LineConfig `yaml:"checkpoint"`
	Laps       int        `yaml:"laps"` // Laps needed to finish, 0 for endless
}

// CarConfig defines the player car.
type CarConfig struct {
	Start    Point `yaml:"start"`
	Velocity Point `yaml:"velocity"`
}

// RivalConfig defines a CPU car that drives with constant velocity.
type RivalConfig struct {
	Name     string `yaml:"name"`
	Start    Point  `yaml:"start"`
	Velocity Point  `yaml:"velocity"`
}

// RacerPhysics defines movement parameters.
type RacerPhysics struct {
	MoveInterval int `yaml:"move_interval"` // Ticks between two moves
	MaxSpeed     int `yaml:"max_speed"`     // Max cells per move on each axis
}

// BoundaryConfig selects how crashes against the track edge are resolved.
type BoundaryConfig struct {
	Selection  string `yaml:"selection"`  // "first" or "nearest"
	Degenerate string `yaml:"degenerate"` // "clamp", "hold" or "fail"
}

// ScoringConfig defines lap scoring.
type ScoringConfig struct {
	LapPoints int `yaml:"lap_points"`
	ParMoves  int `yaml:"par_moves"` // Each move under par on a lap is worth one point
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedBonus        int `yaml:"speed_bonus"`        // Extra max speed at max difficulty
	IntervalReduction int `yaml:"interval_reduction"` // Fewer ticks per move at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// Validate reports the first problem that would make the race unplayable.
func (c RacerConfig) Validate() error {
	t := c.Track
	if t.Corner0.X == t.Corner1.X || t.Corner0.Y == t.Corner1.Y {
		return fmt.Errorf("config: track has zero area: %w", ErrInvalid)
	}
	if t.Finish.From == t.Finish.To {
		return fmt.Errorf("config: finish line is a point: %w", ErrInvalid)
	}
	if t.Checkpoint.From == t.Checkpoint.To {
		return fmt.Errorf("config: checkpoint line is a point: %w", ErrInvalid)
	}
	if t.Laps < 0 {
		return fmt.Errorf("config: negative lap count %d: %w", t.Laps, ErrInvalid)
	}
	if !c.inside(c.Car.Start) {
		return fmt.Errorf("config: car starts outside the track: %w", ErrInvalid)
	}
	for i, r := range c.Rivals {
		if !c.inside(r.Start) {
			return fmt.Errorf("config: rival %d (%s) starts outside the track: %w", i, r.Name, ErrInvalid)
		}
	}
	if c.Physics.MoveInterval < 1 {
		return fmt.Errorf("config: move_interval must be at least 1: %w", ErrInvalid)
	}
	if c.Physics.MaxSpeed < 1 {
		return fmt.Errorf("config: max_speed must be at least 1: %w", ErrInvalid)
	}
	switch c.Boundary.Selection {
	case "", "first", "nearest":
	default:
		return fmt.Errorf("config: unknown boundary selection %q: %w", c.Boundary.Selection, ErrInvalid)
	}
	switch c.Boundary.Degenerate {
	case "", "clamp", "hold", "fail":
	default:
		return fmt.Errorf("config: unknown degenerate policy %q: %w", c.Boundary.Degenerate, ErrInvalid)
	}
	return nil
}

func (c RacerConfig) inside(p Point) bool {
	t := c.Track
	return p.X >= min(t.Corner0.X, t.Corner1.X) && p.X <= max(t.Corner0.X, t.Corner1.X) &&
		p.Y >= min(t.Corner0.Y, t.Corner1.Y) && p.Y <= max(t.Corner0.Y, t.Corner1.Y)
}
