// cavern is a terminal platformer: collect crystals across five themed
// levels and defeat the boss at the end.
//
// Usage:
//
//	cavern play                  - Play the campaign
//	cavern levels                - List the levels of a level pack
//	cavern validate <file>       - Check a level pack for errors
//	cavern simulate --ticks N    - Run headless with scripted input
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavern",
	Short: "Crystal Cavern - a platformer in your terminal",
	Long: `Crystal Cavern is a side-view platformer for the terminal. Run,
jump and dash through five themed levels, collect crystals, grab power-ups
and defeat the boss waiting in the last one.

Available commands:
  play      - Play the campaign
  levels    - List the levels of a level pack
  validate  - Check a level pack for errors
  simulate  - Run the simulation headless with scripted input

Examples:
  cavern play
  cavern play --difficulty hard --seed 42
  cavern levels --levels ./pack.toml
  cavern validate ./pack.yaml
  cavern simulate --ticks 600 --input right,jump@30`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0: play seeds from the clock, simulate uses 1)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback. Every line carries the run id so that several runs
// appending to one file can be told apart. The returned close function
// must be called before exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "cavern",
		Level:           level,
	})
	return logger.With("run", uuid.NewString()), closeFn, nil
}
