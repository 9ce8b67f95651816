package runner

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick         int
	Phase        Phase
	Score        int
	Lives        int
	Speed        float64
	Lane         int
	PlayerX      float64
	PlayerY      float64
	Obstacles    int
	Collectibles int
	SpawnTimer   float64
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tickCount,
		Phase:        g.phase,
		Score:        g.score,
		Lives:        g.lives,
		Speed:        g.pace.speed,
		Obstacles:    len(g.obstacles),
		Collectibles: len(g.collectibles),
	}
	if g.player != nil {
		snap.Lane = g.player.Lane()
		snap.PlayerX = g.player.Pos().X
		snap.PlayerY = g.player.Pos().Y
	}
	if g.spawner != nil {
		snap.SpawnTimer = g.spawner.Timer()
	}
	return snap
}
