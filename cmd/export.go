package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/report"
)

func newExportCommand(app *App) *cobra.Command {
	var (
		fromFlag   string
		toFlag     string
		filterFlag string
		pretty     bool
		readable   bool
	)

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export entries to a file",
		Long: `export writes entries as JSON, preserving every field exactly as
stored (an open entry keeps its end absent). The result can be read back
with "tt import". With --readable a human-oriented text form is written
instead; that form cannot be imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()

			entries, err := app.Store.Load()
			if err != nil {
				return err
			}

			// Unlike list/show, export defaults to the full history.
			filter := filterFlag
			if filter == "" && fromFlag == "" && toFlag == "" {
				filter = "all"
			}
			r, term, err := resolveRange(fromFlag, toFlag, filter, now)
			if err != nil {
				return err
			}
			selected := report.Filter(entries, r, term)

			var data []byte
			if readable {
				var buf bytes.Buffer
				renderEntries(&buf, selected, now)
				data = buf.Bytes()
			} else if pretty {
				data, err = json.MarshalIndent(selected, "", "  ")
			} else {
				data, err = json.Marshal(selected)
			}
			if err != nil {
				return fmt.Errorf("error encoding JSON: %w", err)
			}

			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(selected), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "include entries starting at or after this point (default: everything)")
	cmd.Flags().StringVar(&toFlag, "to", "", "include entries starting before this point; requires --from")
	cmd.Flags().StringVar(&filterFlag, "filter", "", `"today", "week", "all", or a description substring`)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print the JSON output")
	cmd.Flags().BoolVar(&readable, "readable", false, "write a human-readable text form (not importable)")
	return cmd
}
