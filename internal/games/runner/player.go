package runner

import (
	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// ContactState is the player's contact state with the platforms.
type ContactState int

const (
	Airborne ContactState = iota
	Grounded
)

// String returns a human-readable name for the state.
func (s ContactState) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}

// Player integrates the runner's motion and reports landings and falls.
type Player struct {
	cfg config.RunnerPlayer

	pos      core.Vec2
	vel      core.Vec2
	state    ContactState
	alive    bool // Cleared when the player falls into the void
	notified bool // Fell-into-void already emitted
	active   bool // Cleared once the player drops below twice the threshold

	// Aligns the player's feet with the top of a unit-height platform.
	alignOffset float64

	landed *core.Signal
	fell   *core.Signal
}

// NewPlayer creates a player at the configured start position.
func NewPlayer(cfg config.RunnerPlayer) *Player {
	return &Player{
		cfg:         cfg,
		pos:         core.V(cfg.StartX, cfg.StartY),
		vel:         core.V(cfg.StartVelocityX, 0),
		state:       Airborne,
		alive:       true,
		active:      true,
		alignOffset: (cfg.ColliderHeight + 1) / 2,
		landed:      core.NewSignal(),
		fell:        core.NewSignal(),
	}
}

// OnLanded registers fn to run every time the player lands on a platform.
func (p *Player) OnLanded(fn func()) {
	p.landed.Subscribe(fn)
}

// OnFellIntoVoid registers fn to run when the player falls below the threshold.
func (p *Player) OnFellIntoVoid(fn func()) {
	p.fell.Subscribe(fn)
}

// Update advances the player by dt seconds.
func (p *Player) Update(in core.InputFrame, dt float64) {
	if !p.active {
		return
	}

	if p.state == Grounded {
		switch {
		case in.Has(core.ActionJump):
			p.vel.Y += p.cfg.JumpSpeed
		case in.Has(core.ActionShortJump):
			p.vel.Y += p.cfg.JumpSpeed / 2
		default:
			// Running speed has no cap
			p.vel.X += p.cfg.RunAcceleration * dt
		}
	} else {
		p.vel.Y -= p.cfg.Gravity * dt
	}

	p.pos = p.pos.Add(p.vel.Scale(dt))

	if p.pos.Y < p.cfg.BottomOfTheWorld {
		if !p.notified {
			p.notified = true
			p.alive = false
			p.fell.Emit()
		} else if p.pos.Y < 2*p.cfg.BottomOfTheWorld {
			p.active = false
		}
	}
}

// TriggerEnter is called when the player starts touching a platform
// centred at platformPos. The player climbs onto the platform top
// even when it hit the side.
func (p *Player) TriggerEnter(platformPos core.Vec2) {
	if !p.active {
		return
	}
	p.state = Grounded
	p.pos.Y = platformPos.Y + p.alignOffset
	p.vel.Y = 0
	p.landed.Emit()
}

// TriggerExit is called when the player stops touching every platform.
func (p *Player) TriggerExit() {
	if !p.active {
		return
	}
	p.state = Airborne
}

// Position returns the player's centre.
func (p *Player) Position() core.Vec2 {
	return p.pos
}

// Velocity returns the player's velocity in units per second.
func (p *Player) Velocity() core.Vec2 {
	return p.vel
}

// State returns the current contact state.
func (p *Player) State() ContactState {
	return p.state
}

// Alive reports whether the player has not yet fallen into the void.
func (p *Player) Alive() bool {
	return p.alive
}

// Active reports whether the player is still simulated.
func (p *Player) Active() bool {
	return p.active
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.pos, p.cfg.ColliderWidth, p.cfg.ColliderHeight)
}
