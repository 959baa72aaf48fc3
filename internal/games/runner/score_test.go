package runner

import (
	"testing"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

func newTestScore(t *testing.T) (*ScoreTracker, *Player) {
	t.Helper()
	p := NewPlayer(testPlayerConfig())
	return NewScoreTracker(config.DefaultRunnerConfig().Score, p), p
}

// land simulates n separate landings.
func land(p *Player, n int) {
	for i := 0; i < n; i++ {
		p.TriggerEnter(core.V(0, 0))
		p.TriggerExit()
	}
}

func TestScoreInitialText(t *testing.T) {
	s, _ := newTestScore(t)

	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Text() != "Score: 0" {
		t.Errorf("Text() = %q, expected %q", s.Text(), "Score: 0")
	}
}

func TestScoreIncrementsPerLanding(t *testing.T) {
	tests := []struct {
		landings    int
		wantScore   int
		wantScoreUp int
	}{
		{1, 100, 0},
		{4, 400, 0},
		{5, 500, 1},
		{9, 900, 1},
		{10, 1000, 2},
		{12, 1200, 2},
	}

	for _, tc := range tests {
		s, p := newTestScore(t)
		ups := 0
		s.OnScoreUp(func() { ups++ })

		land(p, tc.landings)

		if s.Score() != tc.wantScore {
			t.Errorf("%d landings: Score() = %d, expected %d", tc.landings, s.Score(), tc.wantScore)
		}
		if ups != tc.wantScoreUp {
			t.Errorf("%d landings: score-up fired %d times, expected %d", tc.landings, ups, tc.wantScoreUp)
		}
	}
}

func TestScoreTextTracksScore(t *testing.T) {
	s, p := newTestScore(t)
	land(p, 3)

	if s.Text() != "Score: 300" {
		t.Errorf("Text() = %q, expected %q", s.Text(), "Score: 300")
	}
}

func TestScoreGameOver(t *testing.T) {
	s, p := newTestScore(t)
	land(p, 2)

	p.fell.Emit()
	if s.Text() != "Game Over!" {
		t.Errorf("Text() = %q, expected %q", s.Text(), "Game Over!")
	}

	land(p, 3)
	if s.Score() != 200 {
		t.Errorf("landings after game over changed the score to %d", s.Score())
	}
	if s.Text() != "Game Over!" {
		t.Errorf("landings after game over changed the text to %q", s.Text())
	}
}

func TestScoreNeedsPlayer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewScoreTracker(nil player) should panic")
		}
	}()
	NewScoreTracker(config.DefaultRunnerConfig().Score, nil)
}
