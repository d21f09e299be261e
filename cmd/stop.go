package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/logger"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
)

func newStopCommand(app *App) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the currently running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			at := now
			if atFlag != "" {
				var err error
				at, err = timecalc.ParseAt(atFlag, now)
				if err != nil {
					return err
				}
			}

			log, err := app.loadLog()
			if err != nil {
				return err
			}

			closed, err := log.Stop(at)
			if err != nil {
				return err
			}

			if err := app.Store.Persist(log.Entries()); err != nil {
				return err
			}

			logger.Debug("session stopped", "description", closed.Description, "at", at)
			if closed.Description == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped tracking. Elapsed: %s\n",
					formatElapsed(closed.Duration(at)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped tracking %q. Elapsed: %s\n",
					closed.Description, formatElapsed(closed.Duration(at)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", `stop time, "HH:MM[:SS]" or "YYYY-MM-DD HH:MM[:SS]" (default: now)`)
	return cmd
}
