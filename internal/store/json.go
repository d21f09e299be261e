package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pace-rs/tt-inspire/internal/model"
)

// JSONStore persists the entry sequence as a JSON array in a single file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the JSON file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the data file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads and validates the full entry sequence. A missing file yields
// an empty sequence.
func (s *JSONStore) Load() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}
	// An empty data file is a valid empty sequence, not corruption.
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.Entry{}, nil
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Back up the corrupt file so the next write cannot destroy it.
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		return nil, &CorruptError{Path: s.path, Reason: fmt.Sprintf("invalid JSON (backed up to %s): %v", backupPath, err)}
	}

	if err := Validate(s.path, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Persist atomically replaces the data file with the given sequence.
func (s *JSONStore) Persist(entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
