// catcher runs the falling-item catch games in a terminal or a window.
//
// Usage:
//
//	catcher list              - List available variants
//	catcher play <variant>    - Play a variant
//	catcher menu              - Pick variants interactively
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/catcher/internal/games/catcher"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Catcher - catch the food, dodge the traps",
	Long: `Catcher is a small arcade game: move left and right to catch falling
food for points while dodging traps that cost lives.

Two variants are available:
  catcher       - the classic game, three lives
  catcher_rush  - a start gate, two lives, tighter hitboxes and a faster ramp

Examples:
  catcher list
  catcher play catcher
  catcher play catcher_rush --difficulty hard
  catcher play catcher --window
  catcher menu`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}

// setupLogging points the default logger at --log-file. The terminal
// belongs to the game, so without a file logs are dropped.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)
	log.SetPrefix("catcher")

	if flagLogFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	log.SetOutput(f)
	return nil
}
