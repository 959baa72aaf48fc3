package runner

import "github.com/vovakirdan/void-runner/internal/core"

// Autopilot picks inputs for headless runs: while grounded it jumps once the
// player would run off the current platform within Lead seconds.
type Autopilot struct {
	Lead float64
}

// Input returns the input frame the autopilot presses for the next step of g.
func (a Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.player.State() != Grounded {
		return in
	}

	edge, ok := g.supportEdge()
	if !ok {
		return in
	}

	pos := g.player.Position()
	if pos.X+g.player.Velocity().X*a.Lead >= edge {
		in.Set(core.ActionJump)
	}
	return in
}

// supportEdge returns the right edge of a platform the player is touching.
func (g *Game) supportEdge() (float64, bool) {
	edge, found := 0.0, false
	for id := range g.contacts {
		p := g.streamer.Platform(id)
		if !found || p.Box().Right() > edge {
			edge = p.Box().Right()
			found = true
		}
	}
	return edge, found
}
