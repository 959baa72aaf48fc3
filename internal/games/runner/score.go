package runner

import (
	"fmt"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// ScoreTracker awards points for landings and keeps the HUD text.
type ScoreTracker struct {
	cfg   config.RunnerScore
	score int
	text  string
	over  bool

	scoreUp *core.Signal
}

// NewScoreTracker creates a tracker listening to player. It panics on a nil player.
func NewScoreTracker(cfg config.RunnerScore, player *Player) *ScoreTracker {
	if player == nil {
		panic("runner: score tracker needs a player")
	}
	s := &ScoreTracker{
		cfg:     cfg,
		scoreUp: core.NewSignal(),
	}
	player.OnLanded(s.increment)
	player.OnFellIntoVoid(s.gameOver)
	s.updateText()
	return s
}

// OnScoreUp registers fn to run whenever the score reaches a multiple of
// the zoom interval.
func (s *ScoreTracker) OnScoreUp(fn func()) {
	s.scoreUp.Subscribe(fn)
}

func (s *ScoreTracker) increment() {
	if s.over {
		return
	}
	s.score += s.cfg.PerLanding
	if s.cfg.ZoomEvery > 0 && s.score%s.cfg.ZoomEvery == 0 {
		s.scoreUp.Emit()
	}
	s.updateText()
}

func (s *ScoreTracker) gameOver() {
	s.over = true
	s.text = s.cfg.GameOverText
}

func (s *ScoreTracker) updateText() {
	s.text = fmt.Sprintf("Score: %d", s.score)
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Text returns the display string.
func (s *ScoreTracker) Text() string {
	return s.text
}
