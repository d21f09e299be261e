package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/report"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
)

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session (exit code 1 when idle)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()

			log, err := app.loadLog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if active := log.Active(); active != nil {
				fmt.Fprintln(out, "Tracking:")
				if active.Description != "" {
					fmt.Fprintf(out, "  Description: %s\n", active.Description)
				}
				fmt.Fprintf(out, "  Since: %s\n", active.Start.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "  Elapsed: %s\n",
					timecalc.FormatTemplate(active.Duration(now), timecalc.DefaultTemplate))
				return nil
			}

			// Idle — show today's total.
			summary := report.Summarize(log.Entries(), timecalc.Day(now), now,
				report.Options{IncludeSeconds: true})
			fmt.Fprintln(out, "No active session.")
			fmt.Fprintf(out, "Today: %s logged.\n", timecalc.FormatDuration(summary.Total))
			app.Exit(1)
			return nil
		},
	}
}
