package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the root configuration for tt, stored in ~/.tt/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DataFile is the entry store location. A leading ~ expands to the
	// user's home directory. The extension picks the backend: .db and
	// .sqlite use SQLite, anything else is JSON.
	DataFile string `json:"data_file"`
	// AutoInsertStop makes `tt start` close a running session instead of
	// failing.
	AutoInsertStop bool `json:"auto_insert_stop"`
	// TimeGoal holds the targets used by `tt show --remaining`.
	TimeGoal TimeGoal `json:"time_goal"`
}

// TimeGoal holds the daily and weekly work time targets.
type TimeGoal struct {
	Daily  Goal `json:"daily"`
	Weekly Goal `json:"weekly"`
}

// Goal is a work time target in hours and minutes.
type Goal struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Duration returns the goal as a time.Duration.
func (g Goal) Duration() time.Duration {
	return time.Duration(g.Hours)*time.Hour + time.Duration(g.Minutes)*time.Minute
}

// DefaultDataFile is the entry store location used when none is configured.
const DefaultDataFile = "~/.tt/entries.json"

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		DataFile: DefaultDataFile,
		TimeGoal: TimeGoal{
			Daily:  Goal{Hours: 8},
			Weekly: Goal{Hours: 40},
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// tt configuration – ~/.tt/config.json
//
// All settings are optional; the built-in defaults shown below work out
// of the box. Edit this file to customise tt behaviour.
{
  // Where the entry store lives. ~ expands to your home directory.
  // Use a .db or .sqlite extension to store entries in SQLite instead
  // of JSON. Can be overridden per invocation with: tt --data-file <path>
  "data_file": "~/.tt/entries.json",

  // When true, "tt start" stops a running session instead of failing.
  "auto_insert_stop": false,

  // Targets used by "tt show --remaining".
  "time_goal": {
    "daily":  { "hours": 8,  "minutes": 0 },
    "weekly": { "hours": 40, "minutes": 0 }
  }
}
`

// configFilePath returns the path to ~/.tt/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tt", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tt/config.json, creating it with annotated defaults on
// first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes config file contents, filling zero-value fields with the
// built-in defaults so callers always get a usable Config even if the
// user only partially fills in the file.
func Parse(path string, data []byte) (Config, error) {
	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.TimeGoal.Daily == (Goal{}) {
		cfg.TimeGoal.Daily = Goal{Hours: 8}
	}
	if cfg.TimeGoal.Weekly == (Goal{}) {
		cfg.TimeGoal.Weekly = Goal{Hours: 40}
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
