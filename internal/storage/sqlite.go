// Package storage provides SQLite-based persistence for saved layouts and
// session records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrLayoutNotFound is returned when a named layout does not exist.
var ErrLayoutNotFound = errors.New("storage: layout not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// LayoutEntry is a saved block layout.
type LayoutEntry struct {
	Name      string
	Rows      []string
	Blocks    int
	UpdatedAt time.Time
}

// Session records one hosted play session. Counters are diagnostic only.
type Session struct {
	ID        string
	Host      string // "terminal", "window", "ssh" or "headless"
	User      string
	Layout    string
	StartedAt time.Time
	EndedAt   time.Time
	Frames    uint64
	Resets    int
	Destroyed int
	Escaped   bool
}

// NewSession starts a session record with a fresh id.
func NewSession(host, user, layout string) Session {
	return Session{
		ID:        uuid.NewString(),
		Host:      host,
		User:      user,
		Layout:    layout,
		StartedAt: time.Now(),
	}
}

// Duration returns how long the session ran.
func (s Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
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
		CREATE TABLE IF NOT EXISTS layouts (
			name TEXT PRIMARY KEY,
			rows TEXT NOT NULL,
			blocks INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			host TEXT NOT NULL,
			user TEXT NOT NULL DEFAULT '',
			layout TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			destroyed INTEGER NOT NULL DEFAULT 0,
			escaped INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// SaveLayout stores rows under name, replacing any layout with that name.
// blocks is the caller's block count for rows and is kept for listings.
func (s *Store) SaveLayout(name string, rows []string, blocks int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("storage: layout name is empty")
	}
	if blocks < 0 {
		return fmt.Errorf("storage: negative block count %d", blocks)
	}

	_, err := s.db.Exec(
		`INSERT INTO layouts (name, rows, blocks, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET rows = excluded.rows, blocks = excluded.blocks, updated_at = CURRENT_TIMESTAMP`,
		name, strings.Join(rows, "\n"), blocks,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save layout: %w", err)
	}
	return nil
}

// Layout returns the rows of the named layout.
func (s *Store) Layout(name string) ([]string, error) {
	var text string
	err := s.db.QueryRow("SELECT rows FROM layouts WHERE name = ?", name).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layout: %w", err)
	}
	return splitRows(text), nil
}

// ListLayouts returns every saved layout ordered by name.
func (s *Store) ListLayouts() ([]LayoutEntry, error) {
	rows, err := s.db.Query(
		`SELECT name, rows, blocks, updated_at
		 FROM layouts
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layouts: %w", err)
	}
	defer rows.Close()

	var entries []LayoutEntry
	for rows.Next() {
		var e LayoutEntry
		var text string
		var updatedAt any
		if err := rows.Scan(&e.Name, &text, &e.Blocks, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Rows = splitRows(text)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteLayout removes the named layout.
func (s *Store) DeleteLayout(name string) error {
	res, err := s.db.Exec("DELETE FROM layouts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete layout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	return nil
}

// SaveSession records a finished session. Saving the same id twice replaces
// the earlier record.
func (s *Store) SaveSession(sess Session) error {
	ended := sess.EndedAt
	if ended.IsZero() {
		ended = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO sessions
		 (id, host, user, layout, started_at, ended_at, frames, resets, destroyed, escaped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.Host,
		sess.User,
		sess.Layout,
		sess.StartedAt.UnixMilli(),
		ended.UnixMilli(),
		int64(sess.Frames), //#nosec G115 -- frame counts never reach 2^63
		sess.Resets,
		sess.Destroyed,
		sess.Escaped,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// RecentSessions returns the most recently started sessions.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, host, user, layout, started_at, ended_at, frames, resets, destroyed, escaped
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started, ended, frames int64
		if err := rows.Scan(
			&sess.ID,
			&sess.Host,
			&sess.User,
			&sess.Layout,
			&started,
			&ended,
			&frames,
			&sess.Resets,
			&sess.Destroyed,
			&sess.Escaped,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.UnixMilli(started)
		sess.EndedAt = time.UnixMilli(ended)
		sess.Frames = uint64(frames) //#nosec G115 -- stored from a uint64
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

func splitRows(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
