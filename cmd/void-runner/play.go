package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/platform/tui"
	"github.com/vovakirdan/void-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run in the terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/W/Up   - Jump
  S/Down       - Short jump
  P            - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.void-runner/screenshots
  Esc/B        - Leave (when paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wide ledges, small height changes, softer gravity
  normal - The configured values as they are
  hard   - Narrow ledges, long gaps, faster acceleration

Examples:
  void-runner play
  void-runner play --difficulty easy
  void-runner play --config ./my-runner.yaml
  void-runner play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags validates --config and --difficulty and hands them to the game.
func applyGameFlags() error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("game %q is not registered", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	if _, err := config.LoadRunner(flagConfig); err != nil {
		return err
	}
	runner.SetConfigPath(flagConfig)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger("void-runner")

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagConfig != "" && flagDifficulty != "" {
		logger.Warn("difficulty is ignored with a config file", "config", flagConfig, "difficulty", flagDifficulty)
	}

	cfg := runtimeConfig(terminalSize())
	cfg.Difficulty = flagDifficulty

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
