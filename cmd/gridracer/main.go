// gridracer is a terminal grid racer built on a small 2D geometry kernel.
//
// Usage:
//
//	gridracer list                 - List race modes
//	gridracer play <mode>          - Start a race
//	gridracer menu                 - Pick races interactively
//	gridracer serve                - Start SSH server for remote play
//	gridracer scores <mode>        - Show high scores and recent crashes
//	gridracer crash                - Clamp one motion against a rectangle
//	gridracer intersect            - Classify segment pairs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.gridracer/scores.db)
//	--log-level <level>  - Set log level (default: warn)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gridracer/internal/games/racer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridracer",
	Short: "Grid Racer - race on graph paper in your terminal",
	Long: `Grid Racer is a terminal take on the paper "racetrack" game.
Each move nudges your velocity by one cell per axis; leave the track and
you crash at the exact point where your path crossed the boundary.

Available commands:
  list       - Show all race modes
  play       - Start a race directly
  menu       - Interactive race picker menu
  serve      - Start SSH server for remote play
  scores     - View high scores and crashes
  crash      - Compute where a motion leaves a rectangle
  intersect  - Classify segment intersections

Examples:
  gridracer list
  gridracer play racer
  gridracer menu
  gridracer serve --ssh :2222
  gridracer crash --rect 0,0,60,20 --from 26,16 --to 30,24`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridracer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(crashCmd)
	rootCmd.AddCommand(intersectCmd)
}

// newLogger builds a logger from --log-level that writes to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using warn\n", err)
		level = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openLogFile opens ~/.gridracer/gridracer.log for appending.
// Interactive commands own the terminal, so they log there instead of stderr.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".gridracer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "gridracer.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// interactiveLogger returns a file-backed logger and a close func.
// It falls back to a discarding logger when the file cannot be opened.
func interactiveLogger() (*log.Logger, func()) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "gridracer"), func() {}
	}
	return newLogger(f, "gridracer"), func() { f.Close() }
}
