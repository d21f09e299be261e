package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/pace-rs/tt-inspire/internal/model"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
	"github.com/pace-rs/tt-inspire/internal/tracker"
)

// loadLog reads the store into a tracker.Log.
func (app *App) loadLog() (*tracker.Log, error) {
	entries, err := app.Store.Load()
	if err != nil {
		return nil, err
	}
	return tracker.New(entries), nil
}

// resolveRange turns the --from/--to flags and a filter word into
// concrete half-open bounds plus a description search term. The filter
// may be "today" (the default), "week", "all", or a substring to match
// against descriptions; "all" discards any explicit bounds.
func resolveRange(fromFlag, toFlag, filter string, now time.Time) (timecalc.Range, string, error) {
	term := ""
	r := timecalc.Day(now)
	switch filter {
	case "", "today":
	case "week":
		r = timecalc.Week(now)
	case "all":
		return timecalc.All(), "", nil
	default:
		term = filter
	}

	if fromFlag == "" && toFlag == "" {
		return r, term, nil
	}
	if fromFlag == "" {
		return timecalc.Range{}, "", fmt.Errorf("--from is required when --to is specified")
	}

	from, _, err := timecalc.ParseBound(fromFlag, now)
	if err != nil {
		return timecalc.Range{}, "", fmt.Errorf("invalid --from value %q: %w", fromFlag, err)
	}
	// Without --to the range covers the rest of the start's day.
	to := timecalc.StartOfDay(from).AddDate(0, 0, 1)
	if toFlag != "" {
		t, dateOnly, err := timecalc.ParseBound(toFlag, now)
		if err != nil {
			return timecalc.Range{}, "", fmt.Errorf("invalid --to value %q: %w", toFlag, err)
		}
		if dateOnly {
			// A bare closing date includes that whole day.
			t = timecalc.StartOfDay(t).AddDate(0, 0, 1)
		}
		to = t
	}
	return timecalc.Range{From: from, To: to}, term, nil
}

// renderEntries groups entries by day and writes them out. The open
// entry, if any, shows elapsed-so-far against now.
func renderEntries(out io.Writer, entries []model.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return
	}

	var currentDay string
	for _, e := range entries {
		day := e.Start.Format("2006-01-02")
		if day != currentDay {
			fmt.Fprintln(out, day)
			currentDay = day
		}

		endStr := "ongoing"
		if e.End != nil {
			endStr = e.End.Format("15:04")
		}
		durStr := timecalc.FormatDuration(e.Duration(now))
		if e.Open() {
			durStr += " so far"
		}
		desc := ""
		if e.Description != "" {
			desc = "  " + e.Description
		}
		fmt.Fprintf(out, "%s–%s%s (%s)\n", e.Start.Format("15:04"), endStr, desc, durStr)
	}
}

// formatElapsed renders a closed session's duration like "1h 2m 3s".
func formatElapsed(d time.Duration) string {
	h, m, s := timecalc.SplitHMS(d)
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
