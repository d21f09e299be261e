package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pace-rs/tt-inspire/internal/config"
	"github.com/pace-rs/tt-inspire/internal/logger"
	"github.com/pace-rs/tt-inspire/internal/store"
)

// App carries the collaborators shared by every command: the resolved
// entry store, the configuration, the clock (sampled once per command),
// and the process exit hook. Tests swap in a temp store, a fixed clock,
// and a recording exit.
type App struct {
	Config config.Config
	Store  store.Store
	Now    func() time.Time
	Exit   func(int)
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	var (
		dataFile string
		debug    bool
	)
	app := &App{Now: time.Now, Exit: os.Exit}

	root := &cobra.Command{
		Use:   "tt",
		Short: "tt – a minimal session-based CLI time tracker",
		Long: `tt tracks work sessions from the command line.
Each session has a free-text description, a start time, and an end time;
stopping is what closes the open session. All data lives in a single
file (JSON by default, SQLite via a .db/.sqlite data file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.Config = cfg

			path := cfg.DataFile
			if dataFile != "" {
				path = dataFile
			}
			path, err = config.ExpandHome(path)
			if err != nil {
				return err
			}
			app.Store = store.Open(path)

			if err := logger.Init(filepath.Dir(path), debug); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not set up logging: %v\n", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&dataFile, "data-file", "d", "", "path to the data file (default from config)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "mirror diagnostic logs to stderr")

	root.AddCommand(
		newStartCommand(app),
		newStopCommand(app),
		newContinueCommand(app),
		newStatusCommand(app),
		newListCommand(app),
		newShowCommand(app),
		newExportCommand(app),
		newImportCommand(app),
		newPathCommand(app),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
