// void-runner is an endless platform runner for the terminal.
//
// Usage:
//
//	void-runner play               - Run in the terminal
//	void-runner menu               - Pick a difficulty interactively
//	void-runner scores [level]     - Show the best runs
//	void-runner serve              - Start SSH server for remote play
//	void-runner sim                - Headless run driven by an autopilot
//	void-runner list               - List registered games
//	void-runner defaults           - Print the built-in runner config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.void-runner/scores.db)
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// gameID is the registered game every command plays.
const gameID = "runner"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "void-runner",
	Short: "Void Runner - jump between platforms, don't fall into the void",
	Long: `Void Runner is an endless runner for the terminal. The runner speeds up
on its own; you only decide when to jump. Every landing scores 100 points,
and every 500 points the camera pulls back to show more of the world.

Available commands:
  play     - Run in this terminal
  menu     - Pick a difficulty, view scores, play again
  scores   - Show the best runs
  serve    - Start SSH server for remote play
  sim      - Headless run driven by an autopilot
  list     - Show registered games
  defaults - Print the built-in runner config

Examples:
  void-runner play
  void-runner play --difficulty hard
  void-runner menu
  void-runner serve --ssh :2222
  void-runner sim --frames 6000 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.void-runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the stderr logger used by every command.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// runtimeConfig builds the runtime config shared by the interactive commands.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failures are logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
