package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/model"
	"github.com/pace-rs/tt-inspire/internal/store"
)

func newImportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the store contents from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}

			var entries []model.Entry
			if err := json.Unmarshal(data, &entries); err != nil {
				return &store.CorruptError{Path: args[0], Reason: fmt.Sprintf("invalid JSON: %v", err)}
			}
			// Validate before touching the store; a bad import must not
			// persist anything.
			if err := store.Validate(args[0], entries); err != nil {
				return err
			}

			if err := app.Store.Persist(entries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries into %s\n", len(entries), app.Store.Path())
			return nil
		},
	}
}
