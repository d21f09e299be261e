package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pace-rs/tt-inspire/internal/model"
)

// SQLiteStore persists the entry sequence in a single-file SQLite
// database. Insertion order is kept through a monotonic seq column, and
// Persist replaces the whole sequence inside one transaction.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a store backed by the SQLite database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Path returns the data file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	start       TEXT NOT NULL,
	end         TEXT
);`

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("storage error opening %s: %w", s.path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage error initialising %s: %w", s.path, err)
	}
	return db, nil
}

// Load reads and validates the full entry sequence. A missing file yields
// an empty sequence without creating the database.
func (s *SQLiteStore) Load() ([]model.Entry, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []model.Entry{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT description, start, end FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("storage error querying %s: %w", s.path, err)
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		var (
			e        model.Entry
			startStr string
			endStr   sql.NullString
		)
		if err := rows.Scan(&e.Description, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("storage error scanning %s: %w", s.path, err)
		}
		e.Start, err = time.Parse(time.RFC3339Nano, startStr)
		if err != nil {
			return nil, &CorruptError{Path: s.path, Reason: fmt.Sprintf("malformed start timestamp %q", startStr)}
		}
		if endStr.Valid {
			end, err := time.Parse(time.RFC3339Nano, endStr.String)
			if err != nil {
				return nil, &CorruptError{Path: s.path, Reason: fmt.Sprintf("malformed end timestamp %q", endStr.String)}
			}
			e.End = &end
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}

	if err := Validate(s.path, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Persist replaces the stored sequence with the given one in a single
// transaction.
func (s *SQLiteStore) Persist(entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("storage error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("storage error clearing entries: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (description, start, end) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("storage error preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var end any
		if e.End != nil {
			end = e.End.Format(time.RFC3339Nano)
		}
		if _, err := stmt.Exec(e.Description, e.Start.Format(time.RFC3339Nano), end); err != nil {
			return fmt.Errorf("storage error inserting entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage error committing: %w", err)
	}
	return nil
}
