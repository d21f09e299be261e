package model

import "time"

// Entry represents a single tracked work session. A nil End marks the
// session as still running.
type Entry struct {
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
}

// Open reports whether the session is still running.
func (e Entry) Open() bool {
	return e.End == nil
}

// Duration returns the elapsed time of the entry. Open entries are
// measured against now.
func (e Entry) Duration(now time.Time) time.Duration {
	end := now
	if e.End != nil {
		end = *e.End
	}
	return end.Sub(e.Start)
}

// Day returns the calendar day the entry started on, at midnight in the
// entry's location. Sessions spanning midnight are not split; they count
// towards their start day.
func (e Entry) Day() time.Time {
	return time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, e.Start.Location())
}
