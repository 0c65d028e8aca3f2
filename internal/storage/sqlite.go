// Package storage archives finished sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The leaderboard text file stays the record players see; the archive keeps
// a queryable copy with timestamps for the history command.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pharmacy-quest/internal/config"
	"github.com/vovakirdan/pharmacy-quest/internal/leaderboard"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session archive.
type Store struct {
	db *sql.DB
}

// SessionRecord is one archived session.
type SessionRecord struct {
	ID           int64
	Name         string
	Score        int
	DurationSecs int
	FinishedAt   time.Time
}

// Entry converts the record back to a leaderboard entry.
func (r SessionRecord) Entry() leaderboard.Entry {
	return leaderboard.Entry{
		Name:    r.Name,
		Score:   r.Score,
		Minutes: r.DurationSecs / 60,
		Seconds: r.DurationSecs % 60,
	}
}

// Stats contains aggregated statistics over the archive.
type Stats struct {
	Sessions     int
	BestScore    int
	AvgScore     float64
	FastestSecs  int // Fastest session among those with the best score
	LastFinished time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			finished_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC, duration_secs ASC);
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

// RecordResult archives a saved leaderboard entry.
// Returns the ID of the inserted record.
func (s *Store) RecordResult(e leaderboard.Entry, finishedAt time.Time) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO sessions (name, score, duration_secs, finished_at) VALUES (?, ?, ?, ?)",
		e.Name, e.Score, e.Minutes*60+e.Seconds, finishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults returns the last limit sessions, oldest first.
func (s *Store) RecentResults(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, name, score, duration_secs, finished_at FROM (
			SELECT id, name, score, duration_secs, finished_at
			FROM sessions
			ORDER BY id DESC
			LIMIT ?
		 ) ORDER BY id ASC`,
		limit,
	)
}

// TopResults returns the best sessions: highest score first, faster first on ties.
func (s *Store) TopResults(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, name, score, duration_secs, finished_at
		 FROM sessions
		 ORDER BY score DESC, duration_secs ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var finishedAt any
		if err := rows.Scan(&r.ID, &r.Name, &r.Score, &r.DurationSecs, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinishedAt = parseTime(finishedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats aggregates the whole archive. An empty archive yields zero values.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastFinished sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(finished_at)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.BestScore, &stats.AvgScore, &lastFinished)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if stats.Sessions == 0 {
		return stats, nil
	}
	if lastFinished.Valid {
		stats.LastFinished = parseTime(lastFinished.String)
	}

	err = s.db.QueryRow(
		"SELECT MIN(duration_secs) FROM sessions WHERE score = ?",
		stats.BestScore,
	).Scan(&stats.FastestSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get fastest session: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
