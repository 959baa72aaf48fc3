package runner

import (
	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// Camera follows the player with exponential smoothing.
type Camera struct {
	target    *Player
	pos       core.Vec2
	offset    core.Vec2 // Captured once from the start positions
	smoothing float64
	orthoSize float64
	zoomStep  float64
	enabled   bool
}

// NewCamera creates a camera at the configured start and captures its offset
// from target. It panics on a nil target or score tracker.
func NewCamera(cfg config.RunnerCamera, target *Player, score *ScoreTracker) *Camera {
	if target == nil || score == nil {
		panic("runner: camera needs a target and a score tracker")
	}
	start := core.V(cfg.StartX, cfg.StartY)
	c := &Camera{
		target:    target,
		pos:       start,
		offset:    start.Sub(target.Position()),
		smoothing: cfg.Smoothing,
		orthoSize: cfg.OrthoSize,
		zoomStep:  cfg.ZoomStep,
		enabled:   true,
	}
	score.OnScoreUp(c.zoomOut)
	target.OnFellIntoVoid(func() {
		c.enabled = false
	})
	return c
}

// Update moves the camera toward the target. The interpolation factor is
// smoothing*dt clamped to [0, 1]; a smoothing of zero or less snaps.
func (c *Camera) Update(dt float64) {
	if !c.enabled {
		return
	}
	goal := c.target.Position().Add(c.offset)
	if c.smoothing <= 0 {
		c.pos = goal
		return
	}
	c.pos = core.Lerp(c.pos, goal, c.smoothing*dt)
}

func (c *Camera) zoomOut() {
	c.orthoSize += c.zoomStep
}

// Position returns the camera centre in world units.
func (c *Camera) Position() core.Vec2 {
	return c.pos
}

// Offset returns the captured offset from the target.
func (c *Camera) Offset() core.Vec2 {
	return c.offset
}

// OrthoSize returns half of the visible height in world units.
func (c *Camera) OrthoSize() float64 {
	return c.orthoSize
}

// Enabled reports whether the camera still follows the target.
func (c *Camera) Enabled() bool {
	return c.enabled
}
