// Package history remembers which files were opened, most recent first.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPath returns ~/.local/share/gopanel/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "gopanel", "history.db"), nil
}

// Store manages the recent files list.
type Store struct {
	db *sql.DB
}

// NewStore opens the store at dbPath, creating it and its directory if
// needed. ":memory:" gives a private in-memory store.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS recent_files (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			path        TEXT NOT NULL UNIQUE,
			kind        TEXT NOT NULL DEFAULT '',
			size        INTEGER NOT NULL DEFAULT 0,
			opens       INTEGER NOT NULL DEFAULT 1,
			last_opened TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_recent_last_opened ON recent_files(last_opened DESC);
	`)
	if err != nil {
		return fmt.Errorf("creating history table: %w", err)
	}
	return nil
}

// Record notes that path was opened at at. Opening a known path again
// bumps its count and timestamp.
func (s *Store) Record(path, kind string, size int64, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO recent_files (path, kind, size, opens, last_opened)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(path) DO UPDATE SET
			kind = excluded.kind,
			size = excluded.size,
			opens = recent_files.opens + 1,
			last_opened = excluded.last_opened`,
		path, kind, size, at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", path, err)
	}
	return nil
}

// Recent returns the most recently opened files.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, path, kind, size, opens, last_opened
		FROM recent_files
		ORDER BY last_opened DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns files whose path contains query.
func (s *Store) Search(query string) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, path, kind, size, opens, last_opened
		FROM recent_files
		WHERE path LIKE ?
		ORDER BY last_opened DESC
		LIMIT 50`, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Forget removes path from the list.
func (s *Store) Forget(path string) error {
	_, err := s.db.Exec("DELETE FROM recent_files WHERE path = ?", path)
	return err
}

// Clear removes all entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM recent_files")
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Path, &e.Kind, &e.Size, &e.Opens, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.LastOpened, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
