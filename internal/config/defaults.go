package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default grid racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Track: TrackConfig{
			Corner0: Point{X: 0, Y: 0},
			Corner1: Point{X: 60, Y: 20},
			Finish: LineConfig{
				From: Point{X: 30, Y: 12},
				To:   Point{X: 30, Y: 20},
			},
			Checkpoint: LineConfig{
				From: Point{X: 30, Y: 0},
				To:   Point{X: 30, Y: 8},
			},
			Laps: 3,
		},
		Car: CarConfig{
			Start: Point{X: 26, Y: 16},
		},
		Rivals: []RivalConfig{
			{Name: "blue", Start: Point{X: 8, Y: 4}, Velocity: Point{X: 2, Y: 1}},
			{Name: "red", Start: Point{X: 50, Y: 15}, Velocity: Point{X: -1, Y: -1}},
		},
		Physics: RacerPhysics{
			MoveInterval: 10,
			MaxSpeed:     4,
		},
		Boundary: BoundaryConfig{
			Selection:  "first",
			Degenerate: "clamp",
		},
		Scoring: ScoringConfig{
			LapPoints: 100,
			ParMoves:  40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedBonus:        2,
				IntervalReduction: 5,
			},
		},
	}
}
