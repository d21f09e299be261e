package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/logger"
	"github.com/pace-rs/tt-inspire/internal/timecalc"
	"github.com/pace-rs/tt-inspire/internal/tracker"
)

func newStartCommand(app *App) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "start [description...]",
		Short: "Start tracking a new session",
		Args:  cobra.ArbitraryArgs,
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

			description := strings.Join(args, " ")
			err = log.Start(description, at)
			if errors.Is(err, tracker.ErrAlreadyTracking) && app.Config.AutoInsertStop && atFlag == "" {
				// Restarting the identical session makes no sense; only a
				// different description warrants the implicit stop.
				if active := log.Active(); active != nil && active.Description == description {
					return fmt.Errorf("%q is already running: %w", description, tracker.ErrAlreadyTracking)
				}
				closed, stopErr := log.Stop(now)
				if stopErr != nil {
					return stopErr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stopped %q after %s\n",
					closed.Description, formatElapsed(closed.Duration(now)))
				err = log.Start(description, now)
			}
			if err != nil {
				return err
			}

			if err := app.Store.Persist(log.Entries()); err != nil {
				return err
			}

			logger.Debug("session started", "description", description, "at", at)
			if description == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Started tracking at %s\n", at.Format("15:04:05"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Started tracking %q at %s\n", description, at.Format("15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", `start time, "HH:MM[:SS]" or "YYYY-MM-DD HH:MM[:SS]" (default: now)`)
	return cmd
}
