package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/pace-rs/tt-inspire/internal/model"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
)

var testNow = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

func TestResolveRangeDefaultsToToday(t *testing.T) {
	r, term, err := resolveRange("", "", "", testNow)
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if term != "" {
		t.Errorf("term = %q, want empty", term)
	}
	want := timecalc.Day(testNow)
	if !r.From.Equal(want.From) || !r.To.Equal(want.To) {
		t.Errorf("range = [%v, %v), want today", r.From, r.To)
	}
}

func TestResolveRangeFilters(t *testing.T) {
	r, term, err := resolveRange("", "", "week", testNow)
	if err != nil {
		t.Fatalf("resolveRange week: %v", err)
	}
	if want := timecalc.Week(testNow); !r.From.Equal(want.From) || !r.To.Equal(want.To) {
		t.Errorf("week range = [%v, %v)", r.From, r.To)
	}
	if term != "" {
		t.Errorf("term = %q, want empty", term)
	}

	r, term, err = resolveRange("", "", "all", testNow)
	if err != nil {
		t.Fatalf("resolveRange all: %v", err)
	}
	if !r.From.IsZero() || !r.To.IsZero() {
		t.Errorf("all range = [%v, %v), want unbounded", r.From, r.To)
	}

	r, term, err = resolveRange("", "", "meeting", testNow)
	if err != nil {
		t.Fatalf("resolveRange term: %v", err)
	}
	if term != "meeting" {
		t.Errorf("term = %q, want %q", term, "meeting")
	}
	if want := timecalc.Day(testNow); !r.From.Equal(want.From) {
		t.Errorf("term filter should keep the default today range, got from %v", r.From)
	}
}

func TestResolveRangeExplicitBounds(t *testing.T) {
	// Bare --from date covers that whole day.
	r, _, err := resolveRange("2026-08-25", "", "", testNow)
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if !r.From.Equal(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", r.From)
	}
	if !r.To.Equal(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v", r.To)
	}

	// Datetime --from keeps its clock time; the range still closes at
	// the end of that day.
	r, _, err = resolveRange("2026-08-25 14:00", "", "", testNow)
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if !r.From.Equal(time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", r.From)
	}
	if !r.To.Equal(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v", r.To)
	}

	// Bare --to date includes that whole day.
	r, _, err = resolveRange("2026-08-25", "2026-08-26", "", testNow)
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if !r.To.Equal(time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v", r.To)
	}
}

func TestResolveRangeToWithoutFrom(t *testing.T) {
	if _, _, err := resolveRange("", "2026-08-26", "", testNow); err == nil {
		t.Fatal("expected error for --to without --from")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m 30s"},
		{time.Hour, "1h 0m 0s"},
		{time.Hour + time.Minute + time.Second, "1h 1m 1s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderEntries(t *testing.T) {
	start := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	entries := []model.Entry{
		{Description: "write report", Start: start, End: &end},
		{Description: "review", Start: start.Add(5 * time.Hour)},
	}
	now := start.Add(5*time.Hour + 20*time.Minute)

	buf := &bytes.Buffer{}
	renderEntries(buf, entries, now)
	got := buf.String()

	for _, want := range []string{
		"2026-08-28",
		"09:00–10:30  write report (1h 30m)",
		"14:00–ongoing  review (20m so far)",
	} {
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderEntriesEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	renderEntries(buf, nil, testNow)
	if got := buf.String(); got != "No entries found.\n" {
		t.Errorf("output = %q", got)
	}
}
