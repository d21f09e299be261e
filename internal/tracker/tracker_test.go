package tracker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pace-rs/tt-inspire/internal/model"
	"github.com/pace-rs/tt-inspire/internal/tracker"
)

var base = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func TestStartAppendsOpenEntry(t *testing.T) {
	log := tracker.New(nil)

	if err := log.Start("write report", base); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !log.Tracking() {
		t.Fatal("expected Tracking after Start")
	}
	entries := log.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Description != "write report" {
		t.Errorf("description = %q, want %q", e.Description, "write report")
	}
	if !e.Start.Equal(base) {
		t.Errorf("start = %v, want %v", e.Start, base)
	}
	if !e.Open() {
		t.Error("expected open entry")
	}
}

func TestStartWhileTrackingFailsUnchanged(t *testing.T) {
	log := tracker.New(nil)
	if err := log.Start("a", base); err != nil {
		t.Fatalf("Start: %v", err)
	}

	err := log.Start("b", base.Add(time.Minute))
	if !errors.Is(err, tracker.ErrAlreadyTracking) {
		t.Fatalf("err = %v, want ErrAlreadyTracking", err)
	}
	if len(log.Entries()) != 1 {
		t.Errorf("entries = %d after failed Start, want 1", len(log.Entries()))
	}
	if got := log.Active(); got == nil || got.Description != "a" {
		t.Errorf("active = %v, want the original open entry", got)
	}
}

func TestStopClosesEntry(t *testing.T) {
	log := tracker.New(nil)
	if err := log.Start("a", base); err != nil {
		t.Fatalf("Start: %v", err)
	}

	end := base.Add(90 * time.Minute)
	closed, err := log.Stop(end)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if closed.End == nil || !closed.End.Equal(end) {
		t.Errorf("closed end = %v, want %v", closed.End, end)
	}
	if closed.Duration(end) != 90*time.Minute {
		t.Errorf("duration = %v, want 90m", closed.Duration(end))
	}
	if log.Tracking() {
		t.Error("expected idle after Stop")
	}
}

func TestStopWhileIdleFailsUnchanged(t *testing.T) {
	log := tracker.New(nil)

	if _, err := log.Stop(base); !errors.Is(err, tracker.ErrNotTracking) {
		t.Fatalf("err = %v, want ErrNotTracking", err)
	}
	if len(log.Entries()) != 0 {
		t.Errorf("entries = %d after failed Stop, want 0", len(log.Entries()))
	}

	// Same for a log whose last entry is closed.
	end := base.Add(time.Hour)
	log = tracker.New([]model.Entry{{Description: "a", Start: base, End: &end}})
	if _, err := log.Stop(end.Add(time.Minute)); !errors.Is(err, tracker.ErrNotTracking) {
		t.Fatalf("err = %v, want ErrNotTracking", err)
	}
	if len(log.Entries()) != 1 {
		t.Errorf("entries = %d after failed Stop, want 1", len(log.Entries()))
	}
}

func TestStopBeforeStartFails(t *testing.T) {
	log := tracker.New(nil)
	if err := log.Start("a", base); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := log.Stop(base.Add(-time.Minute)); err == nil {
		t.Fatal("expected error stopping before the session start")
	}
	if !log.Tracking() {
		t.Error("failed Stop must leave the session open")
	}
}

func TestZeroDurationSessionIsValid(t *testing.T) {
	log := tracker.New(nil)
	if err := log.Start("a", base); err != nil {
		t.Fatalf("Start: %v", err)
	}
	closed, err := log.Stop(base)
	if err != nil {
		t.Fatalf("Stop at start time: %v", err)
	}
	if closed.Duration(base) != 0 {
		t.Errorf("duration = %v, want 0", closed.Duration(base))
	}
}

func TestContinueLastReusesDescription(t *testing.T) {
	log := tracker.New(nil)
	if err := log.Start("x", base); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := log.Stop(base.Add(time.Hour)); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	later := base.Add(2 * time.Hour)
	entry, err := log.ContinueLast(later)
	if err != nil {
		t.Fatalf("ContinueLast: %v", err)
	}
	if entry.Description != "x" {
		t.Errorf("description = %q, want %q", entry.Description, "x")
	}
	if !entry.Start.Equal(later) {
		t.Errorf("start = %v, want %v (a new entry, not the old one reopened)", entry.Start, later)
	}

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Open() {
		t.Error("original entry must stay closed")
	}
	if !entries[1].Open() {
		t.Error("continued entry must be open")
	}
}

func TestContinueLastOnEmptyLog(t *testing.T) {
	log := tracker.New(nil)
	if _, err := log.ContinueLast(base); !errors.Is(err, tracker.ErrNothingToContinue) {
		t.Fatalf("err = %v, want ErrNothingToContinue", err)
	}
}

func TestContinueLastWhileTracking(t *testing.T) {
	log := tracker.New(nil)
	if err := log.Start("a", base); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := log.ContinueLast(base.Add(time.Minute)); !errors.Is(err, tracker.ErrAlreadyTracking) {
		t.Fatalf("err = %v, want ErrAlreadyTracking", err)
	}
}

func TestAlternatingStartStopInvariants(t *testing.T) {
	log := tracker.New(nil)
	now := base
	for i := 0; i < 5; i++ {
		if err := log.Start("work", now); err != nil {
			t.Fatalf("Start %d: %v", i, err)
		}
		now = now.Add(30 * time.Minute)
		if _, err := log.Stop(now); err != nil {
			t.Fatalf("Stop %d: %v", i, err)
		}
		now = now.Add(10 * time.Minute)
	}
	if err := log.Start("work", now); err != nil {
		t.Fatalf("final Start: %v", err)
	}

	open := 0
	var prevStart time.Time
	for i, e := range log.Entries() {
		if e.End == nil {
			open++
			if i != len(log.Entries())-1 {
				t.Errorf("open entry at index %d is not last", i)
			}
		} else if e.End.Before(e.Start) {
			t.Errorf("entry %d ends before it starts", i)
		}
		if e.Start.Before(prevStart) {
			t.Errorf("entry %d start precedes the previous entry's start", i)
		}
		prevStart = e.Start
	}
	if open != 1 {
		t.Errorf("open entries = %d, want 1", open)
	}
}

func TestStartBeforePreviousStartFails(t *testing.T) {
	end := base.Add(time.Hour)
	log := tracker.New([]model.Entry{{Description: "a", Start: base, End: &end}})

	if err := log.Start("b", base.Add(-time.Hour)); err == nil {
		t.Fatal("expected error for a start time preceding the previous entry")
	}
	if len(log.Entries()) != 1 {
		t.Errorf("entries = %d after failed Start, want 1", len(log.Entries()))
	}
}
