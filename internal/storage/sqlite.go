// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jecht83/Flappy-Swift/internal/core"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// RunRecord is one journaled run.
type RunRecord struct {
	ID        int64
	GameID    string
	Run       core.RunSummary
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a game.
type Stats struct {
	GameID     string
	Runs       int
	Best       int
	Average    float64
	TotalTicks int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			taps TEXT NOT NULL DEFAULT '[]',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun journals a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, run core.RunSummary) (int64, error) {
	taps := run.Taps
	if taps == nil {
		taps = []int{}
	}
	encoded, err := json.Marshal(taps)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode taps: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, seed, tick_rate, ticks, taps, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		gameID, run.Seed, run.TickRate, run.Ticks, string(encoded), run.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, game_id, seed, tick_rate, ticks, taps, score, created_at`

// Run retrieves one run by ID. Returns ErrNotFound if it does not exist.
func (s *Store) Run(id int64) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// RecentRuns retrieves the latest runs for the given game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
}

// TopRuns retrieves the best runs for the given game.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*RunRecord, error) {
	var (
		rec       RunRecord
		taps      string
		createdAt any
	)
	err := sc.Scan(&rec.ID, &rec.GameID, &rec.Run.Seed, &rec.Run.TickRate, &rec.Run.Ticks, &taps, &rec.Run.Score, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	if err := json.Unmarshal([]byte(taps), &rec.Run.Taps); err != nil {
		return nil, fmt.Errorf("storage: run %d has corrupt taps: %w", rec.ID, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return &rec, nil
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	var (
		count int
		best  sql.NullInt64
		avg   sql.NullFloat64
		ticks sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), SUM(ticks) FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&count, &best, &avg, &ticks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	return &Stats{
		GameID:     gameID,
		Runs:       count,
		Best:       int(best.Int64),
		Average:    avg.Float64,
		TotalTicks: int(ticks.Int64),
	}, nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
