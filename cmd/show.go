package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/report"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
)

func newShowCommand(app *App) *cobra.Command {
	var (
		fromFlag       string
		toFlag         string
		filterFlag     string
		formatFlag     string
		plain          bool
		remaining      bool
		includeSeconds bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show worked time for a range, grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			out := cmd.OutOrStdout()

			entries, err := app.Store.Load()
			if err != nil {
				return err
			}

			r, term, err := resolveRange(fromFlag, toFlag, filterFlag, now)
			if err != nil {
				return err
			}
			if term != "" {
				entries = report.Filter(entries, timecalc.All(), term)
			}

			opts := report.Options{IncludeSeconds: includeSeconds}
			summary := report.Summarize(entries, r, now, opts)

			template := timecalc.DefaultTemplate
			if formatFlag != "" {
				template = formatFlag
			}

			if remaining {
				if fromFlag != "" || toFlag != "" || term != "" {
					return fmt.Errorf(`--remaining works only without --from/--to and with no filter or the filter "week"`)
				}
				goal := app.Config.TimeGoal.Daily.Duration()
				if filterFlag == "week" {
					goal = app.Config.TimeGoal.Weekly.Duration()
				}
				// Goals are whole minutes; seconds are always dropped from
				// the worked time before comparing against them.
				worked := report.Summarize(entries, r, now, report.Options{}).Total
				left := report.Remaining(worked, goal)
				if filterFlag != "week" {
					// The weekly goal can be the nearer one late in the week.
					week := report.Summarize(entries, timecalc.Week(now), now, report.Options{})
					if weekLeft := report.Remaining(week.Total, app.Config.TimeGoal.Weekly.Duration()); weekLeft < left {
						left = weekLeft
					}
				}
				text := timecalc.FormatTemplate(left, template)
				if plain {
					fmt.Fprintln(out, text)
				} else {
					fmt.Fprintf(out, "Remaining work time: %s\n", text)
				}
				return nil
			}

			total := timecalc.FormatTemplate(summary.Total, template)
			if plain {
				fmt.Fprintln(out, total)
				return nil
			}
			for _, d := range summary.Days {
				fmt.Fprintf(out, "%s  %s\n", d.Day.Format("2006-01-02"), timecalc.FormatDuration(d.Total))
			}
			fmt.Fprintf(out, "Work time: %s\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "include entries starting at or after this point (default: today 00:00)")
	cmd.Flags().StringVar(&toFlag, "to", "", "include entries starting before this point; requires --from")
	cmd.Flags().StringVar(&filterFlag, "filter", "", `"today", "week", "all", or a description substring`)
	cmd.Flags().StringVar(&formatFlag, "format", "", `total template, e.g. "{h}h {m}m" (default "{hh}:{mm}:{ss}")`)
	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "print only the total")
	cmd.Flags().BoolVarP(&remaining, "remaining", "r", false, "show time left until the configured goal is met")
	cmd.Flags().BoolVarP(&includeSeconds, "include-seconds", "s", false, "keep second precision instead of truncating to minutes")
	return cmd
}
