package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridracer/internal/geom"
)

var (
	flagRect    []float64
	flagFrom    []float64
	flagTo      []float64
	flagNearest bool
	flagAll     bool
)

var crashCmd = &cobra.Command{
	Use:   "crash",
	Short: "Compute where a motion leaves a rectangle",
	Long: `Clamp a motion from --from to --to against the rectangle --rect.

If the motion stays inside, or starts outside, the destination is printed
unchanged. Otherwise the first boundary crossing is printed. With --nearest
the crossing closest to the start is used, and --all lists every crossing
candidate.

Examples:
  gridracer crash --rect 0,0,60,20 --from 26,16 --to 30,24
  gridracer crash --rect 0,0,10,10 --from 5,5 --to 15,15 --all`,
	Args: cobra.NoArgs,
	RunE: runCrash,
}

func init() {
	crashCmd.Flags().Float64SliceVar(&flagRect, "rect", nil, "Rectangle corners x0,y0,x1,y1")
	crashCmd.Flags().Float64SliceVar(&flagFrom, "from", nil, "Start point x,y")
	crashCmd.Flags().Float64SliceVar(&flagTo, "to", nil, "End point x,y")
	crashCmd.Flags().BoolVar(&flagNearest, "nearest", false, "Use the crossing nearest to the start")
	crashCmd.Flags().BoolVar(&flagAll, "all", false, "List every crossing candidate")
	for _, name := range []string{"rect", "from", "to"} {
		//nolint:errcheck // Flags are defined above
		crashCmd.MarkFlagRequired(name)
	}
}

// vectorFlag converts an x,y flag value.
func vectorFlag(name string, v []float64) (geom.Vector2, error) {
	if len(v) != 2 {
		return geom.Vector2{}, fmt.Errorf("--%s needs 2 numbers, got %d", name, len(v))
	}
	return geom.Vec(v[0], v[1]), nil
}

func runCrash(_ *cobra.Command, _ []string) error {
	if len(flagRect) != 4 {
		return fmt.Errorf("--rect needs 4 numbers, got %d", len(flagRect))
	}
	from, err := vectorFlag("from", flagFrom)
	if err != nil {
		return err
	}
	to, err := vectorFlag("to", flagTo)
	if err != nil {
		return err
	}

	rect := geom.NewBoundaryRect(geom.Vec(flagRect[0], flagRect[1]), geom.Vec(flagRect[2], flagRect[3]))
	fmt.Printf("Rect:   %s\n", rect)
	fmt.Printf("Motion: %s\n", geom.Seg(from, to))

	if flagAll {
		candidates, err := rect.CrossingCandidates(from, to)
		if err != nil && !errors.Is(err, geom.ErrDegenerateInput) {
			return err
		}
		for i, c := range candidates {
			fmt.Printf("  candidate %d: %s\n", i+1, c)
		}
	}

	crash := rect.CrashPosition
	if flagNearest {
		crash = rect.NearestCrashPosition
	}
	at, err := crash(from, to)
	if errors.Is(err, geom.ErrDegenerateInput) {
		// An axis-aligned motion sliding along an edge has no crossing
		at = rect.Clamp(to)
		fmt.Fprintf(os.Stderr, "Warning: %v, clamping instead\n", err)
	} else if err != nil {
		return err
	}

	switch {
	case !rect.Contains(from):
		fmt.Printf("Start is outside, no crash: %s\n", at)
	case rect.Contains(to):
		fmt.Printf("Inside, no crash: %s\n", at)
	default:
		fmt.Printf("Crash at %s\n", at)
	}
	return nil
}
