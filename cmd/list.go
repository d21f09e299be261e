package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/report"
)

func newListCommand(app *App) *cobra.Command {
	var (
		fromFlag   string
		toFlag     string
		filterFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries in a time range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()

			entries, err := app.Store.Load()
			if err != nil {
				return err
			}

			r, term, err := resolveRange(fromFlag, toFlag, filterFlag, now)
			if err != nil {
				return err
			}

			renderEntries(cmd.OutOrStdout(), report.Filter(entries, r, term), now)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "include entries starting at or after this point (default: today 00:00)")
	cmd.Flags().StringVar(&toFlag, "to", "", "include entries starting before this point; requires --from")
	cmd.Flags().StringVar(&filterFlag, "filter", "", `"today", "week", "all", or a description substring`)
	return cmd
}
