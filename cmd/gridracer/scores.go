package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridracer/internal/registry"
	"github.com/vovakirdan/gridracer/internal/storage"
)

var (
	flagScoresLimit  int
	flagCrashesLimit int
	flagClearScores  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent crashes for a race mode",
	Long: `Display the top scores, aggregate stats and the latest crash points
for the given race mode. Without a mode, a summary of every mode is shown.

Examples:
  gridracer scores
  gridracer scores racer
  gridracer scores racer_rivals --crashes 20
  gridracer scores racer --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().IntVar(&flagCrashesLimit, "crashes", 5, "Number of recent crashes to show (0 to hide)")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and crashes of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown race mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridracer list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID, registry.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := printScores(store, gameID, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %-7s  %s\n", "Mode", "Races", "Best", "Average", "Crashes", "Last played")
	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %-7s  %s\n", "----", "-----", "----", "-------", "-------", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-14s  %-6d\n", g.ID, 0)
			continue
		}
		fmt.Printf("  %-14s  %-6d  %-6d  %-8.1f  %-7d  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.Crashes, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores and crashes for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gridracer play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		stats, err := store.GetGameStats(gameID)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Best: %d  Races: %d  Average: %.1f  Crashes: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Crashes)
	}

	if flagCrashesLimit <= 0 {
		return nil
	}
	crashes, err := store.RecentCrashes(gameID, flagCrashesLimit)
	if err != nil {
		return err
	}
	if len(crashes) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent crashes:")
	fmt.Printf("  %-8s  %-6s  %-16s  %s\n", "Car", "Move", "Point", "Run")
	for _, c := range crashes {
		point := fmt.Sprintf("(%g, %g)", c.X, c.Y)
		fmt.Printf("  %-8s  %-6d  %-16s  %s\n", c.Car, c.Tick, point, shortID(c.RunID))
	}
	return nil
}

// shortID trims a run id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
