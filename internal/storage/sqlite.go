// Package storage provides SQLite-based persistence for roll history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-d20/internal/dice"
)

// Store manages the SQLite database connection for roll history.
type Store struct {
	db *sql.DB
}

// RollEntry represents a single persisted roll.
type RollEntry struct {
	ID        int64
	SessionID string
	Value     int
	CreatedAt time.Time
}

// RollStats contains aggregated statistics over all persisted rolls.
type RollStats struct {
	Total            int
	Sessions         int
	Mean             float64
	CriticalFailures int
	CriticalSuccess  int
	LastRolled       time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
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
		CREATE TABLE IF NOT EXISTS rolls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			value INTEGER NOT NULL CHECK (value BETWEEN 1 AND 20),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rolls_session_id ON rolls(session_id);
		CREATE INDEX IF NOT EXISTS idx_rolls_value ON rolls(value);
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

// SaveRoll records a roll for the given session.
// Returns the ID of the inserted record.
func (s *Store) SaveRoll(sessionID string, value int) (int64, error) {
	if !dice.Valid(value) {
		return 0, fmt.Errorf("storage: die value %d out of range", value)
	}

	result, err := s.db.Exec(
		"INSERT INTO rolls (session_id, value) VALUES (?, ?)",
		sessionID, value,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save roll: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRolls retrieves the most recent rolls across all sessions, newest first.
func (s *Store) RecentRolls(limit int) ([]RollEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, value, created_at
		 FROM rolls
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rolls: %w", err)
	}
	return scanRolls(rows)
}

// SessionRolls retrieves the rolls of one session, newest first.
func (s *Store) SessionRolls(sessionID string, limit int) ([]RollEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, value, created_at
		 FROM rolls
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rolls: %w", err)
	}
	return scanRolls(rows)
}

func scanRolls(rows *sql.Rows) ([]RollEntry, error) {
	defer rows.Close()

	var entries []RollEntry
	for rows.Next() {
		var e RollEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Counts returns how often each face was rolled; index 0 is value 1.
func (s *Store) Counts() ([dice.Sides]int, error) {
	var counts [dice.Sides]int

	rows, err := s.db.Query("SELECT value, COUNT(*) FROM rolls GROUP BY value")
	if err != nil {
		return counts, fmt.Errorf("storage: cannot count rolls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var value, n int
		if err := rows.Scan(&value, &n); err != nil {
			return counts, fmt.Errorf("storage: cannot scan count row: %w", err)
		}
		if dice.Valid(value) {
			counts[value-1] = n
		}
	}

	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// Stats retrieves aggregated statistics over all rolls.
func (s *Store) Stats() (*RollStats, error) {
	stats := &RollStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT session_id), COALESCE(AVG(value), 0),
		        COALESCE(SUM(value = 1), 0), COALESCE(SUM(value = 20), 0)
		 FROM rolls`,
	).Scan(&stats.Total, &stats.Sessions, &stats.Mean, &stats.CriticalFailures, &stats.CriticalSuccess)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get roll stats: %w", err)
	}

	var lastRolled any
	err = s.db.QueryRow("SELECT created_at FROM rolls ORDER BY id DESC LIMIT 1").Scan(&lastRolled)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last roll: %w", err)
	}
	if err == nil {
		stats.LastRolled = parseTime(lastRolled)
	}

	return stats, nil
}

// ClearRolls deletes the whole history.
func (s *Store) ClearRolls() error {
	_, err := s.db.Exec("DELETE FROM rolls")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rolls: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
