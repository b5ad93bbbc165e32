package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridracer/internal/config"
	"github.com/vovakirdan/gridracer/internal/geom"
)

var (
	flagSegA  []float64
	flagSegB  []float64
	flagBatch string
)

var intersectCmd = &cobra.Command{
	Use:   "intersect",
	Short: "Classify segment intersections",
	Long: `Classify the intersection of two segments as none, a point or an
overlapping sub-segment.

Give one pair with --a and --b, or a YAML batch file with --batch:

  pairs:
    - name: cross
      a: {from: {x: 0, y: 0}, to: {x: 4, y: 4}}
      b: {from: {x: 0, y: 4}, to: {x: 4, y: 0}}

Batch pairs are classified concurrently and printed in file order.

Examples:
  gridracer intersect --a 0,0,4,4 --b 0,4,4,0
  gridracer intersect --batch ./pairs.yaml`,
	Args: cobra.NoArgs,
	RunE: runIntersect,
}

func init() {
	intersectCmd.Flags().Float64SliceVar(&flagSegA, "a", nil, "First segment x0,y0,x1,y1")
	intersectCmd.Flags().Float64SliceVar(&flagSegB, "b", nil, "Second segment x0,y0,x1,y1")
	intersectCmd.Flags().StringVar(&flagBatch, "batch", "", "YAML file with segment pairs")
	intersectCmd.MarkFlagsMutuallyExclusive("batch", "a")
	intersectCmd.MarkFlagsMutuallyExclusive("batch", "b")
	intersectCmd.MarkFlagsRequiredTogether("a", "b")
}

// segmentFlag converts an x0,y0,x1,y1 flag value.
func segmentFlag(name string, v []float64) (geom.Segment, error) {
	if len(v) != 4 {
		return geom.Segment{}, fmt.Errorf("--%s needs 4 numbers, got %d", name, len(v))
	}
	return geom.Seg(geom.Vec(v[0], v[1]), geom.Vec(v[2], v[3])), nil
}

func lineSegment(l config.LineConfig) geom.Segment {
	return geom.Seg(geom.Vec(l.From.X, l.From.Y), geom.Vec(l.To.X, l.To.Y))
}

func runIntersect(cmd *cobra.Command, _ []string) error {
	if flagBatch != "" {
		return runIntersectBatch(cmd.Context())
	}
	if flagSegA == nil {
		return fmt.Errorf("give --a and --b, or --batch")
	}

	a, err := segmentFlag("a", flagSegA)
	if err != nil {
		return err
	}
	b, err := segmentFlag("b", flagSegB)
	if err != nil {
		return err
	}

	r, err := geom.Intersect(a, b)
	if err != nil {
		return err
	}
	fmt.Printf("%s x %s: %s\n", a, b, r)
	return nil
}

func runIntersectBatch(ctx context.Context) error {
	batch, err := config.LoadIntersectBatch(flagBatch)
	if err != nil {
		return err
	}

	pairs := make([]geom.SegmentPair, len(batch.Pairs))
	for i, p := range batch.Pairs {
		pairs[i] = geom.SegmentPair{A: lineSegment(p.A), B: lineSegment(p.B)}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	results, err := geom.IntersectAll(ctx, pairs)
	if err != nil {
		return err
	}

	counts := make(map[geom.Kind]int)
	for i, r := range results {
		counts[r.Kind]++
		fmt.Printf("%-12s %s x %s: %s\n", batch.Pairs[i].Name, pairs[i].A, pairs[i].B, r)
	}
	fmt.Println()
	fmt.Printf("%d pairs: %d none, %d point, %d overlap\n", len(results),
		counts[geom.NoIntersection], counts[geom.PointIntersection], counts[geom.OverlapSegment])
	return nil
}
