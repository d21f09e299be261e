package timecalc

import (
	"fmt"
	"strings"
	"time"
)

// Range is a half-open time interval [From, To). A zero bound means
// unbounded on that side; the zero Range matches everything.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the range.
func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// All returns the unbounded range.
func All() Range {
	return Range{}
}

// Day returns the range covering the calendar day of t.
func Day(t time.Time) Range {
	from := StartOfDay(t)
	return Range{From: from, To: from.AddDate(0, 0, 1)}
}

// Week returns the range covering the ISO week of t, Monday through
// Sunday.
func Week(t time.Time) Range {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	return Range{From: monday, To: monday.AddDate(0, 0, 7)}
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TruncateMinute drops the seconds and sub-second part of t.
func TruncateMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

// atLayouts are the accepted forms for explicit event times. Time-only
// values are interpreted on the reference day.
var atLayouts = []struct {
	layout   string
	timeOnly bool
}{
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"15:04:05", true},
	{"15:04", true},
}

// ParseAt parses an explicit event time such as "14:30" or
// "2026-08-28 14:30:00". Time-only values resolve on ref's day in ref's
// location.
func ParseAt(s string, ref time.Time) (time.Time, error) {
	for _, l := range atLayouts {
		t, err := time.ParseInLocation(l.layout, s, ref.Location())
		if err != nil {
			continue
		}
		if l.timeOnly {
			t = time.Date(ref.Year(), ref.Month(), ref.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, ref.Location())
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q (expected HH:MM[:SS] or YYYY-MM-DD HH:MM[:SS])", s)
}

// ParseBound parses a range bound. A bare date covers from its midnight;
// dateOnly tells the caller whether to extend a closing bound to the end
// of that day.
func ParseBound(s string, ref time.Time) (t time.Time, dateOnly bool, err error) {
	if d, derr := time.ParseInLocation("2006-01-02", s, ref.Location()); derr == nil {
		return d, true, nil
	}
	t, err = ParseAt(s, ref)
	return t, false, err
}

// FormatDuration formats a duration as a human-readable string like
// "1h 40m" or "45m" or "30s".
func FormatDuration(d time.Duration) string {
	h, m, s := SplitHMS(d)
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// SplitHMS splits a duration into whole hours, minutes, and seconds.
func SplitHMS(d time.Duration) (h, m, s int64) {
	sec := int64(d.Seconds())
	return sec / 3600, (sec % 3600) / 60, sec % 60
}

// DefaultTemplate is the duration template used when none is given.
const DefaultTemplate = "{hh}:{mm}:{ss}"

// FormatTemplate renders d through a template holding {hh} {mm} {ss}
// (zero-padded) and {h} {m} {s} (bare) placeholders.
func FormatTemplate(d time.Duration, template string) string {
	h, m, s := SplitHMS(d)
	r := strings.NewReplacer(
		"{hh}", fmt.Sprintf("%02d", h),
		"{mm}", fmt.Sprintf("%02d", m),
		"{ss}", fmt.Sprintf("%02d", s),
		"{h}", fmt.Sprintf("%d", h),
		"{m}", fmt.Sprintf("%d", m),
		"{s}", fmt.Sprintf("%d", s),
	)
	return r.Replace(template)
}
