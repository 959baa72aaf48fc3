package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/storage"
)

var (
	flagSimFrames int
	flagSimDT     float64
	flagSimLead   float64
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless with an autopilot",
	Long: `Run the game without a terminal UI. An autopilot jumps when the runner
is about to leave its platform. Landings, score-ups and the fall are
logged; the final state is printed when the run ends or the frame budget
is spent.

With a fixed --seed and --dt the run is fully reproducible.

Examples:
  void-runner sim
  void-runner sim --seed 42 --frames 10000
  void-runner sim --difficulty hard --lead 0.15 --log-level debug
  void-runner sim --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().Float64Var(&flagSimDT, "dt", 0, "Seconds per frame (0 = 1/fps)")
	simCmd.Flags().Float64Var(&flagSimLead, "lead", 0.1, "Autopilot look-ahead in seconds")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the finished run to the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// simOptions controls one headless run.
type simOptions struct {
	Frames  int
	DT      float64
	Runtime core.RuntimeConfig
	Pilot   runner.Autopilot
}

// simulate plays game with the autopilot until the frame budget is spent or
// the player leaves the world, logging every signal.
func simulate(game *runner.Game, opts simOptions, logger *log.Logger) runner.Snapshot {
	game.Reset(opts.Runtime)

	game.Player().OnLanded(func() {
		logger.Debug("landed", "x", fmt.Sprintf("%.1f", game.Player().Position().X), "score", game.Score().Score())
	})
	game.Score().OnScoreUp(func() {
		logger.Info("score up", "score", game.Score().Score(), "view", game.Camera().OrthoSize())
	})
	game.Player().OnFellIntoVoid(func() {
		logger.Warn("fell into void",
			"x", fmt.Sprintf("%.1f", game.Player().Position().X),
			"score", game.Score().Score(),
			"t", fmt.Sprintf("%.2fs", game.Elapsed()),
		)
	})

	for i := 0; i < opts.Frames && game.Player().Active(); i++ {
		game.Step(opts.Pilot.Input(game), opts.DT)
	}
	return game.Snapshot()
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger("void-runner-sim")

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig(80, 24)
	rt.Difficulty = flagDifficulty
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	dt := flagSimDT
	if dt <= 0 {
		dt = rt.FrameTime()
	}

	game := runner.New()
	logger.Info("starting simulation", "seed", rt.Seed, "frames", flagSimFrames, "dt", dt)

	snap := simulate(game, simOptions{
		Frames:  flagSimFrames,
		DT:      dt,
		Runtime: rt,
		Pilot:   runner.Autopilot{Lead: flagSimLead},
	}, logger)

	printSnapshot(os.Stdout, snap)

	if flagSimRecord && snap.Score > 0 {
		store := openStore(logger)
		if store == nil {
			return
		}
		defer store.Close()

		id, err := store.SaveRun(storage.Run{
			Difficulty: game.Difficulty(),
			Score:      snap.Score,
			Distance:   snap.PlayerX,
			Duration:   snap.Elapsed,
		})
		if err != nil {
			logger.Error("could not record run", "error", err)
			return
		}
		logger.Info("run recorded", "id", id)
	}
}

// printSnapshot writes the final state as an aligned table.
func printSnapshot(w io.Writer, s runner.Snapshot) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "frames\t%d\n", s.Tick)
	fmt.Fprintf(tw, "time\t%.2fs\n", s.Elapsed)
	fmt.Fprintf(tw, "score\t%d\n", s.Score)
	fmt.Fprintf(tw, "status\t%s\n", s.Text)
	fmt.Fprintf(tw, "alive\t%v\n", s.Alive)
	fmt.Fprintf(tw, "player\t(%.2f, %.2f) %s\n", s.PlayerX, s.PlayerY, s.Contact)
	fmt.Fprintf(tw, "velocity\t(%.2f, %.2f)\n", s.VelX, s.VelY)
	fmt.Fprintf(tw, "platforms\t%d in use, %d free, %d allocated\n", s.InUse, s.Free, s.Allocated)
	fmt.Fprintf(tw, "spawned/recycled\t%d/%d\n", s.Spawned, s.Recycled)
	fmt.Fprintf(tw, "camera\t(%.2f, %.2f) view %.0f\n", s.CameraX, s.CameraY, s.OrthoSize)
	tw.Flush()
}
