package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved data file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Store.Path())
			return nil
		},
	}
}
