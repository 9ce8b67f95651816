package runner

import (
	"testing"

	"github.com/skywaylabs/skyway/internal/config"
)

func testRunnerConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.Enabled = false // fixed parameters unless a test opts in
	return cfg
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	cfg := testRunnerConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(42, cfg, diff)
	p := &pace{speed: cfg.Gameplay.BaseSpeed}

	// Just under one interval: nothing spawns
	obs, cols, ticked := s.TrySpawn(cfg.Spawner.Interval-0.1, p, 0, 0)
	if ticked || obs != nil || cols != nil {
		t.Error("spawner fired before the interval elapsed")
	}

	// Crossing the interval fires exactly one spawn tick and resets the timer
	_, _, ticked = s.TrySpawn(0.2, p, 0, 0)
	if !ticked {
		t.Error("spawner should fire once the interval elapses")
	}
	if s.Timer() != 0 {
		t.Errorf("spawn timer should reset to 0, got %f", s.Timer())
	}
}

func TestSpawnerSpeedRamp(t *testing.T) {
	cfg := testRunnerConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(42, cfg, diff)
	p := &pace{speed: cfg.Gameplay.BaseSpeed}

	s.TrySpawn(cfg.Spawner.Interval+0.01, p, 0, 0)

	want := cfg.Gameplay.BaseSpeed + cfg.Gameplay.SpeedIncrement
	if p.speed != want {
		t.Errorf("speed after one spawn tick = %f, expected %f", p.speed, want)
	}

	// Ramp is capped at max speed
	for i := 0; i < 1000; i++ {
		s.TrySpawn(cfg.Spawner.Interval+0.01, p, 0, 0)
	}
	if p.speed > cfg.Gameplay.MaxSpeed {
		t.Errorf("speed %f exceeded max %f", p.speed, cfg.Gameplay.MaxSpeed)
	}
}

func TestSpawnerLaneExclusivity(t *testing.T) {
	cfg := testRunnerConfig()
	// Force both rolls so every tick produces an obstacle and collectibles
	cfg.Spawner.ObstacleChance = 1.0
	cfg.Spawner.CollectibleChance = 1.0
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(7, cfg, diff)
	p := &pace{speed: cfg.Gameplay.BaseSpeed}

	for tick := 0; tick < 500; tick++ {
		obs, cols, ticked := s.TrySpawn(cfg.Spawner.Interval+0.01, p, 0, 0)
		if !ticked {
			t.Fatal("expected a spawn tick")
		}
		if len(obs) != 1 {
			t.Fatalf("expected exactly one obstacle with chance 1.0, got %d", len(obs))
		}
		// With chance 1.0 every non-obstacle lane gets a collectible,
		// and the obstacle lane never does
		if len(cols) != cfg.Lanes.Count-1 {
			t.Fatalf("expected %d collectibles, got %d", cfg.Lanes.Count-1, len(cols))
		}
		for _, c := range cols {
			if c.Lane() == obs[0].Lane() {
				t.Fatalf("tick %d: obstacle and collectible share lane %d", tick, c.Lane())
			}
		}
	}
}

func TestSpawnerAllLanesEventuallyUsed(t *testing.T) {
	cfg := testRunnerConfig()
	cfg.Spawner.ObstacleChance = 1.0
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(99, cfg, diff)
	p := &pace{speed: cfg.Gameplay.BaseSpeed}

	seen := make(map[int]bool)
	for tick := 0; tick < 200; tick++ {
		obs, _, _ := s.TrySpawn(cfg.Spawner.Interval+0.01, p, 0, 0)
		for _, o := range obs {
			if o.Lane() < 0 || o.Lane() >= cfg.Lanes.Count {
				t.Fatalf("obstacle spawned in invalid lane %d", o.Lane())
			}
			seen[o.Lane()] = true
		}
	}

	if len(seen) != cfg.Lanes.Count {
		t.Errorf("expected obstacles across all %d lanes, saw %d", cfg.Lanes.Count, len(seen))
	}
}

func TestSpawnerSpawnPosition(t *testing.T) {
	cfg := testRunnerConfig()
	cfg.Spawner.ObstacleChance = 1.0
	cfg.Spawner.CollectibleChance = 1.0
	diff := config.NewDifficultyManager(cfg.Difficulty)
	s := NewSpawner(1, cfg, diff)
	p := &pace{speed: cfg.Gameplay.BaseSpeed}

	obs, cols, _ := s.TrySpawn(cfg.Spawner.Interval+0.01, p, 0, 0)

	for _, o := range obs {
		if o.Pos().Z != cfg.Spawner.SpawnZ {
			t.Errorf("obstacle spawned at z=%f, expected %f", o.Pos().Z, cfg.Spawner.SpawnZ)
		}
		if want := laneX(o.Lane(), cfg.Lanes); o.Pos().X != want {
			t.Errorf("obstacle x=%f does not match lane %d (want %f)", o.Pos().X, o.Lane(), want)
		}
	}
	for _, c := range cols {
		if c.Pos().Z != cfg.Spawner.SpawnZ {
			t.Errorf("collectible spawned at z=%f, expected %f", c.Pos().Z, cfg.Spawner.SpawnZ)
		}
		if c.Value() != cfg.Scoring.CollectibleValue {
			t.Errorf("collectible value %d, expected %d", c.Value(), cfg.Scoring.CollectibleValue)
		}
	}
}

func TestSpawnerDeterministicWithSeed(t *testing.T) {
	cfg := testRunnerConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)

	run := func(seed int64) []int {
		s := NewSpawner(seed, cfg, diff)
		p := &pace{speed: cfg.Gameplay.BaseSpeed}
		var lanes []int
		for i := 0; i < 100; i++ {
			obs, _, _ := s.TrySpawn(cfg.Spawner.Interval+0.01, p, 0, 0)
			for _, o := range obs {
				lanes = append(lanes, o.Lane())
			}
		}
		return lanes
	}

	a := run(12345)
	b := run(12345)
	if len(a) != len(b) {
		t.Fatalf("runs differ in spawn count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverge at spawn %d: lane %d vs %d", i, a[i], b[i])
		}
	}
}
