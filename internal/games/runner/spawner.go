package runner

import (
	"math/rand"

	"github.com/skywaylabs/skyway/internal/config"
)

// Spawner decides, once per spawn interval, which lanes receive an obstacle
// and which receive collectibles. An obstacle lane is removed from the
// candidate set before collectibles are rolled, so the two never share a
// lane within one spawn tick and at least one lane is always passable.
type Spawner struct {
	rng        *rand.Rand
	timer      float64
	cfg        config.SpawnerConfig
	lanes      config.LaneConfig
	gameplay   config.GameplayConfig
	scoring    config.ScoringConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.RunnerConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg.Spawner,
		lanes:      cfg.Lanes,
		gameplay:   cfg.Gameplay,
		scoring:    cfg.Scoring,
		difficulty: diff,
	}
}

// Reset clears the spawn timer and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.timer = 0
	s.rng = rand.New(rand.NewSource(seed))
}

// Timer returns the accumulated time since the last spawn tick.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// TrySpawn accumulates dt into the spawn timer. When a full interval has
// elapsed it resets the timer, ramps the world speed by the configured
// increment, and rolls this tick's entities. The returned flag reports
// whether a spawn tick occurred.
func (s *Spawner) TrySpawn(dt float64, p *pace, score, ticks int) ([]*Obstacle, []*Collectible, bool) {
	s.timer += dt
	interval := s.difficulty.Interval(s.cfg.Interval, score, ticks)
	if s.timer < interval {
		return nil, nil, false
	}
	s.timer = 0

	// Difficulty ramp: the world runs faster after every spawn tick
	p.speed += s.gameplay.SpeedIncrement
	if p.speed > s.gameplay.MaxSpeed {
		p.speed = s.gameplay.MaxSpeed
	}

	available := make([]int, s.lanes.Count)
	for i := range available {
		available[i] = i
	}

	var obstacles []*Obstacle
	obstacleChance := s.difficulty.ObstacleChance(s.cfg.ObstacleChance, score, ticks)
	if s.rng.Float64() < obstacleChance {
		i := s.rng.Intn(len(available))
		lane := available[i]
		available = append(available[:i], available[i+1:]...)
		obstacles = append(obstacles, newObstacle(lane, laneX(lane, s.lanes), s.cfg.SpawnZ, p))
	}

	var collectibles []*Collectible
	for _, lane := range available {
		if s.rng.Float64() < s.cfg.CollectibleChance {
			collectibles = append(collectibles,
				newCollectible(lane, laneX(lane, s.lanes), s.cfg.SpawnZ, s.scoring.CollectibleValue, p))
		}
	}

	return obstacles, collectibles, true
}
