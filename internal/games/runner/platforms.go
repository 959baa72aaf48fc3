package runner

import (
	"math/rand"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// PlatformHeight is the vertical size of every platform.
const PlatformHeight = 1.0

// PlatformID is a platform's slot in the streamer's storage.
type PlatformID int

// Platform is a pooled ledge the player can land on.
type Platform struct {
	ID     PlatformID
	Pos    core.Vec2 // Centre
	Width  float64
	Active bool
}

// Box returns the platform's trigger volume.
func (p Platform) Box() core.Box {
	return core.NewBox(p.Pos, p.Width, PlatformHeight)
}

// PlatformStreamer keeps a bounded set of platforms around the player.
// Platforms are allocated lazily and never freed: recycled slots go to the
// free pool and are reused by later spawns.
type PlatformStreamer struct {
	cfg    config.RunnerPlatforms
	player *Player
	rng    *rand.Rand

	platforms []Platform // All allocated slots, indexed by PlatformID
	inUse     core.Queue[PlatformID]
	free      core.Queue[PlatformID]
	cursor    core.Vec2

	playerAlive bool
	spawned     int
	recycled    int
}

// NewPlatformStreamer creates a streamer that follows player and spawns the
// first platform at the configured start cursor. It panics on a nil player.
func NewPlatformStreamer(cfg config.RunnerPlatforms, player *Player, rng *rand.Rand) *PlatformStreamer {
	if player == nil {
		panic("runner: platform streamer needs a player")
	}
	s := &PlatformStreamer{
		cfg:         cfg,
		player:      player,
		rng:         rng,
		platforms:   make([]Platform, 0, 8),
		cursor:      core.V(cfg.FirstX, cfg.FirstY),
		playerAlive: true,
	}
	player.OnFellIntoVoid(func() {
		s.playerAlive = false
	})
	s.Spawn()
	return s
}

// Update recycles at most one platform behind the player and spawns at most
// one ahead. Both limits hold even when more platforms qualify, so a very fast
// player can outrun the stream.
func (s *PlatformStreamer) Update() {
	if !s.playerAlive {
		return
	}

	playerX := s.player.Position().X

	// The last in-use platform is never recycled so Oldest stays defined.
	if s.inUse.Len() > 1 && playerX-s.Oldest().Pos.X > s.cfg.RecycleDistance {
		s.RecycleOldest()
	}

	if s.cursor.X < playerX+s.cfg.SpawnDistance {
		s.Spawn()
	}
}

// Spawn places a platform at the spawn cursor, reusing a free slot when one
// exists, and advances the cursor.
func (s *PlatformStreamer) Spawn() PlatformID {
	var id PlatformID
	if freeID, ok := s.free.Pop(); ok {
		id = freeID
	} else {
		id = PlatformID(len(s.platforms))
		s.platforms = append(s.platforms, Platform{ID: id})
	}

	s.inUse.Push(id)

	p := &s.platforms[id]
	p.Active = true
	p.Pos = s.cursor
	p.Width = s.uniform(s.cfg.MinWidth, s.cfg.MaxWidth)

	s.cursor.X += s.uniform(s.cfg.MinXSpacing, s.cfg.MaxXSpacing)
	s.cursor.Y += s.uniform(s.cfg.MinYSpacing, s.cfg.MaxYSpacing)

	s.spawned++
	return id
}

// RecycleOldest deactivates the oldest in-use platform and moves it to the
// free pool. ok is false when nothing is in use.
func (s *PlatformStreamer) RecycleOldest() (id PlatformID, ok bool) {
	id, ok = s.inUse.Pop()
	if !ok {
		return 0, false
	}
	s.platforms[id].Active = false
	s.free.Push(id)
	s.recycled++
	return id, true
}

// Oldest returns the platform that has been in use the longest.
// It panics if no platform is in use.
func (s *PlatformStreamer) Oldest() Platform {
	id, ok := s.inUse.Peek()
	if !ok {
		panic("runner: no platform in use")
	}
	return s.platforms[id]
}

// Platform returns the platform stored in slot id.
func (s *PlatformStreamer) Platform(id PlatformID) Platform {
	return s.platforms[id]
}

// EachActive calls fn for every in-use platform, oldest first.
func (s *PlatformStreamer) EachActive(fn func(Platform)) {
	s.inUse.Each(func(id PlatformID) {
		fn(s.platforms[id])
	})
}

// InUseIDs returns the in-use slots, oldest first.
func (s *PlatformStreamer) InUseIDs() []PlatformID {
	ids := make([]PlatformID, 0, s.inUse.Len())
	s.inUse.Each(func(id PlatformID) { ids = append(ids, id) })
	return ids
}

// FreeIDs returns the free slots in reuse order.
func (s *PlatformStreamer) FreeIDs() []PlatformID {
	ids := make([]PlatformID, 0, s.free.Len())
	s.free.Each(func(id PlatformID) { ids = append(ids, id) })
	return ids
}

// Cursor returns the position of the next spawn.
func (s *PlatformStreamer) Cursor() core.Vec2 {
	return s.cursor
}

// InUse returns the number of platforms in play.
func (s *PlatformStreamer) InUse() int {
	return s.inUse.Len()
}

// Free returns the number of pooled platforms.
func (s *PlatformStreamer) Free() int {
	return s.free.Len()
}

// Allocated returns the number of platforms ever created.
func (s *PlatformStreamer) Allocated() int {
	return len(s.platforms)
}

// Frozen reports whether the streamer stopped after the player fell.
func (s *PlatformStreamer) Frozen() bool {
	return !s.playerAlive
}

// uniform returns a value in [lo, hi). Inverted ranges are not guarded.
func (s *PlatformStreamer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
