package report

import (
	"strings"
	"time"

	"github.com/pace-rs/tt-inspire/internal/model"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
)

// DayTotal is the worked time accumulated on one calendar day.
type DayTotal struct {
	Day   time.Time
	Total time.Duration
}

// Summary is the result of aggregating a range of entries: per-day totals
// in chronological order plus the grand total.
type Summary struct {
	Days  []DayTotal
	Total time.Duration
}

// Options tunes the aggregation.
type Options struct {
	// IncludeSeconds keeps second precision. When false, entry bounds and
	// now are truncated to the minute before durations are computed.
	IncludeSeconds bool
}

// Summarize selects the entries whose start falls within r and sums their
// durations grouped by the start's calendar day. An entry still open at
// report time contributes elapsed-so-far against now. Entries spanning
// midnight count entirely towards their start day.
func Summarize(entries []model.Entry, r timecalc.Range, now time.Time, opts Options) Summary {
	if !opts.IncludeSeconds {
		now = timecalc.TruncateMinute(now)
	}

	var s Summary
	for _, e := range entries {
		if !r.Contains(e.Start) {
			continue
		}
		if !opts.IncludeSeconds {
			e.Start = timecalc.TruncateMinute(e.Start)
			if e.End != nil {
				end := timecalc.TruncateMinute(*e.End)
				e.End = &end
			}
		}

		day := e.Day()
		dur := e.Duration(now)
		if n := len(s.Days); n > 0 && s.Days[n-1].Day.Equal(day) {
			s.Days[n-1].Total += dur
		} else {
			s.Days = append(s.Days, DayTotal{Day: day, Total: dur})
		}
		s.Total += dur
	}
	return s
}

// Filter returns the entries whose start falls within r and whose
// description contains term. An empty term matches every entry.
func Filter(entries []model.Entry, r timecalc.Range, term string) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if !r.Contains(e.Start) {
			continue
		}
		if term != "" && !strings.Contains(e.Description, term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Remaining returns how much of goal is left after the worked time.
// The result is negative once the goal is exceeded.
func Remaining(worked, goal time.Duration) time.Duration {
	return goal - worked
}
