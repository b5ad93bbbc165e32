package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrMissingRunID is returned when a crash is saved without a run.
var ErrMissingRunID = errors.New("storage: crash without run id")

// CrashEntry is one boundary crash recorded during a run.
type CrashEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Car       string
	Tick      int
	X, Y      float64
	CreatedAt time.Time
}

// NewRunID returns a fresh identifier that groups the crashes and the
// final score of one race.
func NewRunID() string {
	return uuid.NewString()
}

// SaveCrash records a crash. Returns the ID of the inserted record.
func (s *Store) SaveCrash(c CrashEntry) (int64, error) {
	if c.RunID == "" {
		return 0, ErrMissingRunID
	}
	result, err := s.db.Exec(
		"INSERT INTO crashes (run_id, game_id, car, tick, x, y) VALUES (?, ?, ?, ?, ?, ?)",
		c.RunID, c.GameID, c.Car, c.Tick, c.X, c.Y,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save crash: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// CrashesForRun returns the crashes of one run in the order they happened.
func (s *Store) CrashesForRun(runID string) ([]CrashEntry, error) {
	return s.queryCrashes(
		`SELECT id, run_id, game_id, car, tick, x, y, created_at
		 FROM crashes
		 WHERE run_id = ?
		 ORDER BY tick ASC, id ASC`,
		runID,
	)
}

// RecentCrashes returns the latest crashes of a game, newest first.
// An empty gameID matches every game.
func (s *Store) RecentCrashes(gameID string, limit int) ([]CrashEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryCrashes(
		`SELECT id, run_id, game_id, car, tick, x, y, created_at
		 FROM crashes
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

func (s *Store) queryCrashes(query string, args ...any) ([]CrashEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query crashes: %w", err)
	}
	defer rows.Close()

	var entries []CrashEntry
	for rows.Next() {
		var c CrashEntry
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.GameID, &c.Car, &c.Tick, &c.X, &c.Y, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
