package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/registry"
)

const testDT = 1.0 / 60

func newTestGame(cfg config.RunnerConfig, seed int64) *Game {
	g := NewWithConfig(cfg)
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("runner")
	if err != nil {
		t.Fatalf("Create(runner) error: %v", err)
	}
	if g.Title() != "Void Runner" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Void Runner")
	}
}

func TestGameLandsOnFirstPlatform(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig(), 1)

	landed := 0
	g.Player().OnLanded(func() { landed++ })

	frame := 0
	for ; frame < 120 && g.Player().State() == Airborne; frame++ {
		g.Step(core.NewInputFrame(), testDT)
	}
	if g.Player().State() != Grounded {
		t.Fatal("player never landed on the first platform")
	}

	if landed != 1 {
		t.Errorf("landed fired %d times, expected 1", landed)
	}
	if g.Score().Score() != 100 {
		t.Errorf("Score() = %d after first landing, expected 100", g.Score().Score())
	}
	if got := g.Player().Position().Y; got != -5.5 {
		t.Errorf("player y = %f, expected to rest at -5.5", got)
	}

	// Stay grounded for a few frames without new landings.
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame(), testDT)
	}
	if g.Player().State() != Grounded {
		t.Error("player should keep running on the platform")
	}
	if landed != 1 {
		t.Errorf("landed fired %d times while grounded, expected 1", landed)
	}
}

func TestGameOverAfterFall(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Platforms.FirstX = 1000 // Nothing under the player

	g := newTestGame(cfg, 1)
	fell := 0
	g.Player().OnFellIntoVoid(func() { fell++ })

	for i := 0; i < 600 && g.Player().Active(); i++ {
		g.Step(core.NewInputFrame(), testDT)
	}

	if !g.State().GameOver {
		t.Fatal("expected game over after falling")
	}
	if g.Player().Active() {
		t.Error("player should be deactivated below twice the threshold")
	}
	if fell != 1 {
		t.Errorf("fell-into-void fired %d times, expected 1", fell)
	}
	if g.Camera().Enabled() {
		t.Error("camera should be disabled after the fall")
	}
	if !g.Streamer().Frozen() {
		t.Error("streamer should be frozen after the fall")
	}
	if g.Score().Text() != "Game Over!" {
		t.Errorf("Text() = %q, expected %q", g.Score().Text(), "Game Over!")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame(), testDT)
	if g.Snapshot() != before {
		t.Error("inactive game should not advance")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig(), 1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause, testDT)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), testDT)
	}
	if g.Snapshot() != before {
		t.Error("paused game should not advance")
	}

	g.Step(pause, testDT)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("Tick = %d after resume, expected %d", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestGameDeterminism(t *testing.T) {
	pilot := Autopilot{Lead: 0.1}
	a := newTestGame(config.DefaultRunnerConfig(), 42)
	b := newTestGame(config.DefaultRunnerConfig(), 42)

	for i := 0; i < 2000; i++ {
		a.Step(pilot.Input(a), testDT)
		b.Step(pilot.Input(b), testDT)

		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("frame %d: snapshots diverged\n%+v\n%+v", i, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestGameInvariantsUnderAutopilot(t *testing.T) {
	pilot := Autopilot{Lead: 0.1}
	g := newTestGame(config.DefaultRunnerConfig(), 7)

	lastScore := 0
	for i := 0; i < 3000 && g.Player().Active(); i++ {
		g.Step(pilot.Input(g), testDT)
		snap := g.Snapshot()

		if snap.Contact != Grounded && snap.Contact != Airborne {
			t.Fatalf("frame %d: unknown contact state %v", i, snap.Contact)
		}
		if snap.Score < lastScore || (snap.Score-lastScore)%100 != 0 {
			t.Fatalf("frame %d: score moved from %d to %d", i, lastScore, snap.Score)
		}
		if snap.InUse+snap.Free != snap.Allocated {
			t.Fatalf("frame %d: pool accounting broken: %+v", i, snap)
		}
		if snap.InUse == 0 {
			t.Fatalf("frame %d: no platform in use", i)
		}
		lastScore = snap.Score
	}

	if lastScore == 0 {
		t.Error("autopilot should land at least once")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player should be visible at the start")
	}
	if !strings.ContainsRune(out, PlatformChar) {
		t.Error("first platform should be visible at the start")
	}
}

func TestGameRenderNarrowAndPaused(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig(), 1)

	narrow := core.NewScreen(10, 24)
	g.Render(narrow)
	if row := narrow.Row(0); !strings.HasPrefix(row, " Spd: 10.0") {
		t.Errorf("Row(0) = %q, expected the speed readout clamped to column 0", row)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, testDT)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Box is 5 rows high, title on its second row
	y := (24-5)/2 + 1
	x := (80 - len("PAUSED")) / 2
	for i, r := range "PAUSED" {
		if got := screen.GetCell(x+i, y).Rune; got != r {
			t.Fatalf("cell (%d, %d) = %q, expected %q of a centred PAUSED", x+i, y, got, r)
		}
	}
}

func TestGameRenderGameOver(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Platforms.FirstX = 1000

	g := newTestGame(cfg, 1)
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame(), testDT)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message should be drawn")
	}
}

func TestGameResetRestarts(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig(), 3)
	first := g.Snapshot()

	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame(), testDT)
	}
	rt := core.DefaultConfig()
	rt.Seed = 3
	g.Reset(rt)

	if g.Snapshot() != first {
		t.Error("Reset with the same seed should restore the initial state")
	}
}

func TestGameConfigFileWinsOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("platforms:\n  min_width: 99\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	for _, difficulty := range []string{"", "easy", "hard"} {
		t.Run("difficulty="+difficulty, func(t *testing.T) {
			g := New()
			rt := core.DefaultConfig()
			rt.Difficulty = difficulty
			g.Reset(rt)

			if g.Difficulty() != string(config.DifficultyCustom) {
				t.Errorf("Difficulty() = %q, expected %q", g.Difficulty(), config.DifficultyCustom)
			}
			if got := g.Config().Platforms.MinWidth; got != 99 {
				t.Errorf("MinWidth = %f, expected 99 from the config file", got)
			}
		})
	}
}

func TestGamePresetWithoutConfigFile(t *testing.T) {
	SetConfigPath("")

	tests := []struct {
		difficulty string
		expected   string
	}{
		{"", "normal"},
		{"normal", "normal"},
		{"hard", "hard"},
		{"bogus", "normal"},
	}

	for _, tc := range tests {
		t.Run("difficulty="+tc.difficulty, func(t *testing.T) {
			g := New()
			rt := core.DefaultConfig()
			rt.Difficulty = tc.difficulty
			g.Reset(rt)

			if g.Difficulty() != tc.expected {
				t.Errorf("Difficulty() = %q, expected %q", g.Difficulty(), tc.expected)
			}
		})
	}
}
