package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

func testPlatformConfig() config.RunnerPlatforms {
	return config.DefaultRunnerConfig().Platforms
}

func newTestStreamer(t *testing.T, pcfg config.RunnerPlatforms, playerX float64) (*PlatformStreamer, *Player) {
	t.Helper()
	cfg := testPlayerConfig()
	cfg.StartX = playerX
	p := NewPlayer(cfg)
	return NewPlatformStreamer(pcfg, p, rand.New(rand.NewSource(7))), p
}

// checkPool asserts every allocated slot is in exactly one queue.
func checkPool(t *testing.T, s *PlatformStreamer) {
	t.Helper()

	if s.InUse()+s.Free() != s.Allocated() {
		t.Fatalf("inUse(%d) + free(%d) != allocated(%d)", s.InUse(), s.Free(), s.Allocated())
	}

	seen := make(map[PlatformID]string)
	for _, id := range s.InUseIDs() {
		seen[id] = "inUse"
		if !s.Platform(id).Active {
			t.Fatalf("in-use platform %d is inactive", id)
		}
	}
	for _, id := range s.FreeIDs() {
		if where, dup := seen[id]; dup {
			t.Fatalf("platform %d is both free and %s", id, where)
		}
		seen[id] = "free"
		if s.Platform(id).Active {
			t.Fatalf("free platform %d is active", id)
		}
	}
	if len(seen) != s.Allocated() {
		t.Fatalf("%d slots tracked, %d allocated", len(seen), s.Allocated())
	}
}

func TestStreamerFirstSpawn(t *testing.T) {
	s, _ := newTestStreamer(t, testPlatformConfig(), 0)

	if s.InUse() != 1 || s.Allocated() != 1 {
		t.Fatalf("expected one platform after construction, got inUse=%d allocated=%d", s.InUse(), s.Allocated())
	}

	first := s.Oldest()
	if first.Pos != core.V(0, -6.5) {
		t.Errorf("first platform at %v, expected (0, -6.5)", first.Pos)
	}
	if first.Width < 20 || first.Width > 30 {
		t.Errorf("width %f outside [20, 30]", first.Width)
	}

	cursor := s.Cursor()
	if cursor.X < 35 || cursor.X > 45 {
		t.Errorf("cursor.x = %f, expected within [35, 45]", cursor.X)
	}
	if cursor.Y < -14.5 || cursor.Y > 1.5 {
		t.Errorf("cursor.y = %f, expected within [-14.5, 1.5]", cursor.Y)
	}
}

func TestStreamerRecycleDistance(t *testing.T) {
	tests := []struct {
		name            string
		recycleDistance float64
		wantRecycle     bool
	}{
		{"60 past the oldest exceeds 50", 50, true},
		{"60 past the oldest is within 70", 70, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pcfg := testPlatformConfig()
			pcfg.FirstX = 40
			pcfg.MinXSpacing = 30
			pcfg.MaxXSpacing = 30
			pcfg.SpawnDistance = 0
			pcfg.RecycleDistance = tc.recycleDistance

			s, _ := newTestStreamer(t, pcfg, 100)
			s.Spawn() // second platform at x=70, cursor moves to 100

			s.Update()

			if got := s.Free() == 1; got != tc.wantRecycle {
				t.Errorf("recycled = %v, expected %v", got, tc.wantRecycle)
			}
			if s.Allocated() != 2 {
				t.Errorf("cursor at the player should not spawn, allocated = %d", s.Allocated())
			}
			checkPool(t, s)
		})
	}
}

func TestStreamerNeverRecyclesLastPlatform(t *testing.T) {
	pcfg := testPlatformConfig()
	pcfg.FirstX = 40
	pcfg.MinXSpacing = 30
	pcfg.MaxXSpacing = 30
	pcfg.SpawnDistance = 0
	pcfg.RecycleDistance = 50

	s, _ := newTestStreamer(t, pcfg, 100)

	// Only one platform: it must survive even though it qualifies.
	s.Update()
	if s.InUse() != 2 || s.Free() != 0 {
		t.Fatalf("first update: inUse=%d free=%d, expected a spawn and no recycle", s.InUse(), s.Free())
	}

	s.Update()
	if s.InUse() != 1 || s.Free() != 1 {
		t.Fatalf("second update: inUse=%d free=%d, expected one recycle", s.InUse(), s.Free())
	}
	if s.Oldest().Pos.X != 70 {
		t.Errorf("oldest platform x = %f, expected 70", s.Oldest().Pos.X)
	}
}

func TestStreamerReusesFreeSlots(t *testing.T) {
	s, _ := newTestStreamer(t, testPlatformConfig(), 0)
	s.Spawn()

	id, ok := s.RecycleOldest()
	if !ok {
		t.Fatal("RecycleOldest() should succeed with platforms in use")
	}

	reused := s.Spawn()
	if reused != id {
		t.Errorf("Spawn() used slot %d, expected recycled slot %d", reused, id)
	}
	if s.Allocated() != 2 {
		t.Errorf("Allocated() = %d, expected 2", s.Allocated())
	}
	if !s.Platform(reused).Active {
		t.Error("reused platform should be reactivated")
	}
	checkPool(t, s)
}

func TestStreamerPoolInvariantWhileRunning(t *testing.T) {
	s, p := newTestStreamer(t, testPlatformConfig(), 0)

	lastCursor := s.Cursor().X
	for x := 0.0; x < 5000; x += 7 {
		p.pos.X = x
		spawned, recycled := s.spawned, s.recycled

		s.Update()

		if s.spawned-spawned > 1 || s.recycled-recycled > 1 {
			t.Fatalf("x=%f: more than one spawn or recycle in a frame", x)
		}
		if s.Cursor().X < lastCursor {
			t.Fatalf("cursor moved backwards: %f -> %f", lastCursor, s.Cursor().X)
		}
		lastCursor = s.Cursor().X
		if s.InUse() == 0 {
			t.Fatal("in-use queue became empty")
		}
		checkPool(t, s)
	}

	if s.Free() == 0 && s.recycled == 0 {
		t.Error("running 5000 units should recycle platforms")
	}
	if s.Allocated() > 10 {
		t.Errorf("pool grew to %d platforms, expected reuse to bound it", s.Allocated())
	}
}

func TestStreamerFreezesAfterFall(t *testing.T) {
	cfg := testPlayerConfig()
	cfg.StartY = -100
	p := NewPlayer(cfg)
	s := NewPlatformStreamer(testPlatformConfig(), p, rand.New(rand.NewSource(1)))

	p.Update(core.NewInputFrame(), 0.01)
	if p.Alive() {
		t.Fatal("player below the threshold should have fallen")
	}

	p.pos.X = 10000
	s.Update()

	if !s.Frozen() {
		t.Error("streamer should freeze after the fall")
	}
	if s.Allocated() != 1 || s.Free() != 0 {
		t.Errorf("frozen streamer changed the pool: allocated=%d free=%d", s.Allocated(), s.Free())
	}
}

func TestStreamerNeedsPlayer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPlatformStreamer(nil player) should panic")
		}
	}()
	NewPlatformStreamer(testPlatformConfig(), nil, rand.New(rand.NewSource(1)))
}
