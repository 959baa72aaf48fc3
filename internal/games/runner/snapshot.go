package runner

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick      uint64
	Elapsed   float64
	PlayerX   float64
	PlayerY   float64
	VelX      float64
	VelY      float64
	Contact   ContactState
	Alive     bool
	Active    bool
	Score     int
	Text      string
	InUse     int
	Free      int
	Allocated int
	Spawned   int
	Recycled  int
	CursorX   float64
	CursorY   float64
	CameraX   float64
	CameraY   float64
	OrthoSize float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.player.Position()
	vel := g.player.Velocity()
	cursor := g.streamer.Cursor()
	cam := g.camera.Position()

	return Snapshot{
		Tick:      g.tick,
		Elapsed:   g.elapsed,
		PlayerX:   pos.X,
		PlayerY:   pos.Y,
		VelX:      vel.X,
		VelY:      vel.Y,
		Contact:   g.player.State(),
		Alive:     g.player.Alive(),
		Active:    g.player.Active(),
		Score:     g.score.Score(),
		Text:      g.score.Text(),
		InUse:     g.streamer.InUse(),
		Free:      g.streamer.Free(),
		Allocated: g.streamer.Allocated(),
		Spawned:   g.streamer.spawned,
		Recycled:  g.streamer.recycled,
		CursorX:   cursor.X,
		CursorY:   cursor.Y,
		CameraX:   cam.X,
		CameraY:   cam.Y,
		OrthoSize: g.camera.OrthoSize(),
	}
}
