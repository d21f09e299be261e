package tracker

import (
	"fmt"
	"time"

	"github.com/pace-rs/tt-inspire/internal/model"
)

// Log owns the ordered sequence of entries and the start/stop state
// machine over it. Entries are only ever appended or amended in place;
// whether tracking is active is derived from the last entry rather than
// kept as separate state.
type Log struct {
	entries []model.Entry
}

// New wraps an entry sequence, typically one freshly loaded from a store.
func New(entries []model.Entry) *Log {
	return &Log{entries: entries}
}

// Entries returns the full ordered sequence.
func (l *Log) Entries() []model.Entry {
	return l.entries
}

// Tracking reports whether the last entry is still open.
func (l *Log) Tracking() bool {
	return len(l.entries) > 0 && l.entries[len(l.entries)-1].Open()
}

// Active returns the open entry, or nil when idle.
func (l *Log) Active() *model.Entry {
	if !l.Tracking() {
		return nil
	}
	return &l.entries[len(l.entries)-1]
}

// Start appends a new open entry beginning at the given time. It fails
// with ErrAlreadyTracking when a session is open, leaving the log
// unchanged.
func (l *Log) Start(description string, at time.Time) error {
	if l.Tracking() {
		return ErrAlreadyTracking
	}
	if n := len(l.entries); n > 0 && at.Before(l.entries[n-1].Start) {
		return fmt.Errorf("start time %s is before the previous session's start %s",
			at.Format(time.RFC3339), l.entries[n-1].Start.Format(time.RFC3339))
	}
	l.entries = append(l.entries, model.Entry{
		Description: description,
		Start:       at,
	})
	return nil
}

// Stop closes the open entry at the given time and returns it. It fails
// with ErrNotTracking when idle, leaving the log unchanged.
func (l *Log) Stop(at time.Time) (model.Entry, error) {
	if !l.Tracking() {
		return model.Entry{}, ErrNotTracking
	}
	open := &l.entries[len(l.entries)-1]
	if at.Before(open.Start) {
		return model.Entry{}, fmt.Errorf("stop time %s is before the session's start %s",
			at.Format(time.RFC3339), open.Start.Format(time.RFC3339))
	}
	end := at
	open.End = &end
	return *open, nil
}

// ContinueLast starts a new session reusing the description of the most
// recent entry. The closed entry is left untouched; a fresh one is
// appended.
func (l *Log) ContinueLast(at time.Time) (model.Entry, error) {
	if l.Tracking() {
		return model.Entry{}, ErrAlreadyTracking
	}
	if len(l.entries) == 0 {
		return model.Entry{}, ErrNothingToContinue
	}
	last := l.entries[len(l.entries)-1]
	if err := l.Start(last.Description, at); err != nil {
		return model.Entry{}, err
	}
	return l.entries[len(l.entries)-1], nil
}
