package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridracer/internal/config"
	"github.com/vovakirdan/gridracer/internal/core"
	"github.com/vovakirdan/gridracer/internal/platform/tui"
	"github.com/vovakirdan/gridracer/internal/registry"
	"github.com/vovakirdan/gridracer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Start a race",
	Long: `Start a race in the given mode.

Controls:
  Arrows/WASD  - Change velocity by one cell
  Space        - Brake
  P            - Pause
  R            - Restart (after the race ends)
  Esc          - Leave (when paused or finished)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower cars, longer move interval, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Faster cars, shorter move interval, starts at 70%
  fixed  - No progression, stays at the config's values

Examples:
  gridracer play racer
  gridracer play racer_rivals --difficulty hard
  gridracer play racer --config ./my-track.yaml
  gridracer play racer --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// checkGameFlags validates --config and --difficulty before the terminal is taken over.
func checkGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadRacer(flagConfig); err != nil {
			return err
		}
	}
	return nil
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown race mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridracer list' to see available modes.")
		os.Exit(1)
	}
	if err := checkGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := interactiveLogger()
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if it cannot be opened
	store := openStore()

	runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
