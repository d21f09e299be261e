package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/logger"
)

func newContinueCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Start a new session with the last session's description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()

			log, err := app.loadLog()
			if err != nil {
				return err
			}

			entry, err := log.ContinueLast(now)
			if err != nil {
				return err
			}

			if err := app.Store.Persist(log.Entries()); err != nil {
				return err
			}

			logger.Debug("session continued", "description", entry.Description, "at", now)
			if entry.Description == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Continued tracking at %s\n", now.Format("15:04:05"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Continued tracking %q at %s\n", entry.Description, now.Format("15:04:05"))
			}
			return nil
		},
	}
}
