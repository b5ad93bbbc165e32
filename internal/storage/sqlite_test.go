package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// Check that the file was created in the nested directory
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs the migrations again without error
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("racer", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("racer_rivals", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.GameID != "racer" {
			t.Errorf("scores[%d].GameID = %q, expected racer", i, e.GameID)
		}
	}

	rivalScores, err := store.TopScores("racer_rivals", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rivalScores) != 1 {
		t.Errorf("Expected 1 racer_rivals score, got %d", len(rivalScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("racer", 100)
	store.SaveScore("racer", 300)
	store.SaveScore("racer", 200)

	high, err = store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	runID := NewRunID()

	store.SaveScore("racer", 100)
	store.SaveRunScore("racer", runID, 200)
	store.SaveScore("racer_rivals", 300)
	store.SaveCrash(CrashEntry{RunID: runID, GameID: "racer", Car: "player", Tick: 4, X: 1, Y: 2})

	if err := store.ClearScores("racer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	racerScores, _ := store.TopScores("racer", 10)
	if len(racerScores) != 0 {
		t.Errorf("Expected 0 racer scores after clear, got %d", len(racerScores))
	}
	crashes, _ := store.CrashesForRun(runID)
	if len(crashes) != 0 {
		t.Errorf("Expected crashes to be cleared with scores, got %d", len(crashes))
	}

	rivalScores, _ := store.TopScores("racer_rivals", 10)
	if len(rivalScores) != 1 {
		t.Errorf("racer_rivals scores should not be affected by clearing racer")
	}
}

func TestStoreCrashLog(t *testing.T) {
	store := openTestStore(t)

	run1 := NewRunID()
	run2 := NewRunID()
	if run1 == run2 || run1 == "" {
		t.Fatalf("NewRunID() should return distinct ids, got %q and %q", run1, run2)
	}

	entries := []CrashEntry{
		{RunID: run1, GameID: "racer_rivals", Car: "blue", Tick: 16, X: 40, Y: 20},
		{RunID: run1, GameID: "racer_rivals", Car: "red", Tick: 15, X: 35, Y: 0},
		{RunID: run2, GameID: "racer", Car: "player", Tick: 3, X: 28.5, Y: 20},
	}
	for _, e := range entries {
		if _, err := store.SaveCrash(e); err != nil {
			t.Fatalf("SaveCrash() failed: %v", err)
		}
	}

	got, err := store.CrashesForRun(run1)
	if err != nil {
		t.Fatalf("CrashesForRun() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 crashes for run1, got %d", len(got))
	}
	// ordered by tick
	if got[0].Car != "red" || got[1].Car != "blue" {
		t.Errorf("CrashesForRun() order = %s, %s, expected red, blue", got[0].Car, got[1].Car)
	}
	if got[0].X != 35 || got[0].Y != 0 || got[0].Tick != 15 {
		t.Errorf("crash = %+v, expected red at (35, 0) tick 15", got[0])
	}

	recent, err := store.RecentCrashes("", 2)
	if err != nil {
		t.Fatalf("RecentCrashes() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Car != "player" {
		t.Errorf("RecentCrashes(\"\", 2) = %+v, expected newest first", recent)
	}

	racerOnly, err := store.RecentCrashes("racer", 10)
	if err != nil {
		t.Fatalf("RecentCrashes() failed: %v", err)
	}
	if len(racerOnly) != 1 || racerOnly[0].X != 28.5 {
		t.Errorf("RecentCrashes(racer) = %+v, expected the single player crash", racerOnly)
	}

	if _, err := store.SaveCrash(CrashEntry{GameID: "racer"}); !errors.Is(err, ErrMissingRunID) {
		t.Errorf("SaveCrash() without run id error = %v, expected ErrMissingRunID", err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	runID := NewRunID()

	store.SaveRunScore("racer", runID, 100)
	store.SaveScore("racer", 300)
	store.SaveCrash(CrashEntry{RunID: runID, GameID: "racer", Car: "player", Tick: 9, X: 60, Y: 3})
	store.SaveScore("racer_rivals", 50)

	stats, err := store.GetGameStats("racer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.Crashes != 1 {
		t.Errorf("Crashes = %d, expected 1", stats.Crashes)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["racer"].Crashes != 1 || all["racer_rivals"].HighScore != 50 {
		t.Errorf("GetAllGamesStats() racer = %+v, rivals = %+v", all["racer"], all["racer_rivals"])
	}

	top, _ := store.TopScores("racer", 1)
	if len(top) != 1 || top[0].RunID != "" {
		t.Errorf("top score = %+v, expected the score saved without run id", top)
	}
}
