package store

import (
	"fmt"
	"strings"

	"github.com/pace-rs/tt-inspire/internal/model"
)

// Store reads and writes the full ordered entry sequence. Implementations
// must treat a missing file as an empty sequence and replace the contents
// atomically on Persist so a crash mid-write never leaves a partial file.
type Store interface {
	Load() ([]model.Entry, error)
	Persist(entries []model.Entry) error
	Path() string
}

// CorruptError describes persisted data that fails structural or
// invariant validation.
type CorruptError struct {
	Path   string
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store %s: %s", e.Path, e.Reason)
}

// Open picks a backend for the given data file path. Files ending in .db
// or .sqlite use the SQLite backend; everything else is stored as JSON.
func Open(path string) Store {
	switch {
	case strings.HasSuffix(path, ".db"), strings.HasSuffix(path, ".sqlite"):
		return NewSQLiteStore(path)
	default:
		return NewJSONStore(path)
	}
}

// Validate checks the sequence invariants shared by all backends: every
// closed entry ends at or after its start, and at most one entry is open,
// which must be the last one.
func Validate(path string, entries []model.Entry) error {
	for i, e := range entries {
		if e.Start.IsZero() {
			return &CorruptError{Path: path, Reason: fmt.Sprintf("entry %d has no start time", i)}
		}
		if e.End != nil && e.End.Before(e.Start) {
			return &CorruptError{Path: path, Reason: fmt.Sprintf("entry %d ends before it starts", i)}
		}
		if e.Open() && i != len(entries)-1 {
			return &CorruptError{Path: path, Reason: fmt.Sprintf("entry %d is open but not the last entry", i)}
		}
	}
	return nil
}
