package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/storage"
)

var (
	flagClearScores bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [easy|normal|hard|custom]",
	Short: "Show the best runs",
	Long: `Display the top 10 runs, optionally for one difficulty only.
Without a difficulty, a summary per difficulty follows the table.

Examples:
  void-runner scores
  void-runner scores hard
  void-runner scores --all
  void-runner scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the listed runs instead of showing them")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every run instead of the top 10")
}

// scoreLevels is the order difficulties are summarised in.
var scoreLevels = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyCustom,
}

// parseScoreLevel accepts the presets plus "custom".
func parseScoreLevel(s string) (string, error) {
	if config.ParsePreset(s) != "" || config.DifficultyPreset(s) == config.DifficultyCustom {
		return s, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := storage.AllDifficulties
	title := "all difficulties"
	if len(args) == 1 {
		level, err := parseScoreLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = level
		title = level
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearRuns(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	var runs []storage.Run
	if flagAllScores {
		runs, err = store.AllRuns(difficulty)
	} else {
		runs, err = store.TopRuns(difficulty, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'void-runner play' to set the first high score!")
		return
	}

	printRuns(os.Stdout, runs)

	stats, err := store.Stats(difficulty)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("%d runs, average %.0f, longest %.0f units, %.1f minutes played\n",
			stats.RunsCount, stats.AvgScore, stats.LongestRun, stats.TotalPlayTime/60)
	}

	if difficulty == storage.AllDifficulties {
		byLevel, err := store.StatsByDifficulty()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		printLevelStats(os.Stdout, byLevel)
	}
}

func printRuns(w io.Writer, runs []storage.Run) {
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-7s  %-6s  %s\n", "Rank", "Score", "Distance", "Time", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %-7s  %-6s  %s\n", "----", "-----", "--------", "----", "-----", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-8.0f  %-7s  %-6s  %s\n",
			i+1,
			r.Score,
			r.Distance,
			fmt.Sprintf("%.1fs", r.Duration),
			r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

// printLevelStats writes one line per difficulty that has runs.
func printLevelStats(w io.Writer, byLevel map[string]*storage.RunStats) {
	fmt.Fprintf(w, "  %-6s  %-4s  %-8s  %-8s  %s\n", "Level", "Runs", "Best", "Average", "Longest")
	fmt.Fprintf(w, "  %-6s  %-4s  %-8s  %-8s  %s\n", "-----", "----", "----", "-------", "-------")
	for _, level := range scoreLevels {
		st, ok := byLevel[string(level)]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-6s  %-4d  %-8d  %-8.0f  %.0f\n",
			level, st.RunsCount, st.HighScore, st.AvgScore, st.LongestRun)
	}
}
