// Package runner implements an endless platform runner.
// The player runs right on its own, jumps between platforms streamed in
// ahead of it and loses by falling into the void below.
package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	PlatformChar = '▀'
	VoidChar     = '░'
)

// contactSkin lets a player resting exactly on a platform top count as touching.
const contactSkin = 0.01

// Game composes the runner's components and drives them once per frame.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	fixed   *config.RunnerConfig // Set by NewWithConfig; bypasses file loading

	rng      *rand.Rand
	player   *Player
	streamer *PlatformStreamer
	score    *ScoreTracker
	camera   *Camera

	contacts map[PlatformID]bool // Platforms touched after the last frame
	scratch  map[PlatformID]bool

	difficulty config.DifficultyPreset
	paused     bool
	tick       uint64
	elapsed    float64 // Simulated seconds
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a runner that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a runner that always uses cfg.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.player = NewPlayer(g.cfg.Player)
	g.streamer = NewPlatformStreamer(g.cfg.Platforms, g.player, g.rng)
	g.score = NewScoreTracker(g.cfg.Score, g.player)
	g.camera = NewCamera(g.cfg.Camera, g.player, g.score)

	g.contacts = make(map[PlatformID]bool)
	g.scratch = make(map[PlatformID]bool)
	g.paused = false
	g.tick = 0
	g.elapsed = 0
}

func (g *Game) loadConfig() config.RunnerConfig {
	if g.fixed != nil {
		g.difficulty = config.DifficultyCustom
		return *g.fixed
	}

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}

	// A config file is taken as is; presets only tune the built-in values
	if configPath != "" && err == nil {
		g.difficulty = config.DifficultyCustom
		return cfg
	}

	g.difficulty = config.DifficultyNormal
	if preset := config.ParsePreset(g.runtime.Difficulty); preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
		g.difficulty = preset
	}
	return cfg
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	// Pausing is only offered while the run is alive
	if in.Has(core.ActionPause) && g.player.Alive() {
		g.paused = !g.paused
	}

	if g.paused || !g.player.Active() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed += dt

	g.player.Update(in, dt)
	g.resolveContacts()
	g.streamer.Update()
	g.camera.Update(dt)

	return core.StepResult{State: g.State()}
}

// resolveContacts turns box overlaps into trigger callbacks: enter when the
// player starts touching any platform, exit when it touches none.
func (g *Game) resolveContacts() {
	now := g.scratch
	clear(now)

	var entered *Platform
	if g.player.Active() {
		box := g.player.Box()
		g.streamer.EachActive(func(p Platform) {
			if !box.Touches(p.Box(), contactSkin) {
				return
			}
			now[p.ID] = true
			if entered == nil && !g.contacts[p.ID] {
				entered = &p
			}
		})
	}

	was := len(g.contacts) > 0
	switch {
	case !was && len(now) > 0:
		g.player.TriggerEnter(entered.Pos)
	case was && len(now) == 0:
		g.player.TriggerExit()
	}

	g.contacts, g.scratch = now, g.contacts
}

// viewport maps world units to screen cells around the camera.
type viewport struct {
	cam         core.Vec2
	rowsPerUnit float64
	colsPerUnit float64
	w, h        int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	ortho := g.camera.OrthoSize()
	if ortho <= 0 {
		ortho = 1
	}
	rows := float64(dst.Height()) / (2 * ortho)
	return viewport{
		cam:         g.camera.Position(),
		rowsPerUnit: rows,
		colsPerUnit: rows * 2, // Terminal cells are about twice as tall as wide
		w:           dst.Width(),
		h:           dst.Height(),
	}
}

func (v viewport) toScreen(p core.Vec2) (int, int) {
	x := math.Floor((p.X-v.cam.X)*v.colsPerUnit + float64(v.w)/2)
	y := math.Floor(float64(v.h)/2 - (p.Y-v.cam.Y)*v.rowsPerUnit)
	return int(x), int(y)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	view := g.viewport(dst)

	// Void threshold
	_, voidY := view.toScreen(core.V(0, g.cfg.Player.BottomOfTheWorld))
	if voidY >= 0 && voidY < dst.Height() {
		dst.DrawHLine(0, voidY, dst.Width(), VoidChar, core.ColorRed)
	}

	g.streamer.EachActive(func(p Platform) {
		box := p.Box()
		x0, y := view.toScreen(core.V(box.Left(), box.Top()))
		x1, _ := view.toScreen(core.V(box.Right(), box.Top()))
		dst.DrawHLine(x0, y, max(x1-x0, 1), PlatformChar, core.ColorGreen)
	})

	if g.player.Active() {
		px, py := view.toScreen(g.player.Position())
		color := core.ColorCyan
		if !g.player.Alive() {
			color = core.ColorRed
		}
		dst.SetColored(px, py, PlayerChar, color)
	}

	// HUD
	dst.DrawTextColored(2, 0, " "+g.score.Text()+" ", core.ColorYellow)
	speedText := fmt.Sprintf(" Spd: %.1f ", g.player.Velocity().X)
	speedX := core.Clamp(dst.Width()-len(speedText)-2, 0, dst.Width())
	dst.DrawTextColored(speedX, 0, speedText, core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if !g.player.Alive() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Score(),
		GameOver: !g.player.Alive(),
		Paused:   g.paused,
	}
}

// Player returns the player component.
func (g *Game) Player() *Player { return g.player }

// Streamer returns the platform streamer.
func (g *Game) Streamer() *PlatformStreamer { return g.streamer }

// Score returns the score tracker.
func (g *Game) Score() *ScoreTracker { return g.score }

// Camera returns the camera.
func (g *Game) Camera() *Camera { return g.camera }

// Config returns the configuration in use since the last Reset.
func (g *Game) Config() config.RunnerConfig { return g.cfg }

// Difficulty returns the preset the current run was configured with,
// or "custom" when it runs on a config file or NewWithConfig.
func (g *Game) Difficulty() string { return string(g.difficulty) }

// Distance returns how far right the player got.
func (g *Game) Distance() float64 { return g.player.Position().X }

// Elapsed returns the simulated seconds since Reset.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
