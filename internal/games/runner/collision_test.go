package runner

import (
	"testing"

	"github.com/skywaylabs/skyway/internal/core"
)

const (
	testObstacleRadius = 1.0
	testPickupRadius   = 0.8
)

func obstacleAt(x, y, z float64) *Obstacle {
	return &Obstacle{pos: core.Vec3{X: x, Y: y, Z: z}, pace: &pace{}}
}

func collectibleAt(x, y, z float64, value int) *Collectible {
	return &Collectible{pos: core.Vec3{X: x, Y: y, Z: z}, value: value, pace: &pace{}}
}

func TestCollideObstacleHit(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}
	obstacles := []*Obstacle{obstacleAt(0, 0, 0.5)} // distance 0.5 < 1.0

	rep := collide(player, obstacles, nil, testObstacleRadius, testPickupRadius, 3)

	if rep.LivesLost != 1 {
		t.Errorf("LivesLost = %d, expected 1", rep.LivesLost)
	}
	if len(rep.HitObstacles) != 1 {
		t.Errorf("expected 1 hit obstacle, got %d", len(rep.HitObstacles))
	}
}

func TestCollideObstacleMiss(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}

	tests := []struct {
		name string
		obs  *Obstacle
	}{
		{"too far ahead", obstacleAt(0, 0, 1.5)},
		{"adjacent lane", obstacleAt(2, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := collide(player, []*Obstacle{tc.obs}, nil, testObstacleRadius, testPickupRadius, 3)
			if rep.LivesLost != 0 {
				t.Errorf("expected miss, lost %d lives", rep.LivesLost)
			}
		})
	}
}

func TestCollideJumpClearsObstacle(t *testing.T) {
	// Mid-jump the player is well above the obstacle's center
	player := core.Vec3{X: 0, Y: 1.8, Z: 0}
	obstacles := []*Obstacle{obstacleAt(0, 0, 0.3)}

	rep := collide(player, obstacles, nil, testObstacleRadius, testPickupRadius, 3)

	if rep.LivesLost != 0 {
		t.Errorf("airborne player should clear the obstacle, lost %d lives", rep.LivesLost)
	}
}

func TestCollideCollectiblePickup(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}
	cols := []*Collectible{collectibleAt(0, 0, 0.5, 10)} // distance 0.5 < 0.8

	rep := collide(player, nil, cols, testObstacleRadius, testPickupRadius, 3)

	if rep.ScoreGained != 10 {
		t.Errorf("ScoreGained = %d, expected 10", rep.ScoreGained)
	}
	if len(rep.Consumed) != 1 {
		t.Errorf("expected 1 consumed collectible, got %d", len(rep.Consumed))
	}
}

func TestCollidePickupRadiusSmallerThanHitRadius(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}

	// Distance 0.9: inside obstacle radius (1.0) but outside pickup radius (0.8)
	obstacles := []*Obstacle{obstacleAt(0, 0, 0.9)}
	cols := []*Collectible{collectibleAt(0, 0, 0.9, 10)}

	rep := collide(player, obstacles, cols, testObstacleRadius, testPickupRadius, 3)

	if rep.LivesLost != 1 {
		t.Errorf("obstacle at 0.9 should hit, LivesLost = %d", rep.LivesLost)
	}
	if rep.ScoreGained != 0 {
		t.Errorf("collectible at 0.9 should be out of pickup range, gained %d", rep.ScoreGained)
	}
}

func TestCollideMultipleObstaclesSameFrame(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}

	// Two overlapping obstacles both in range: both charged as independent
	// hits in the same frame
	obstacles := []*Obstacle{obstacleAt(0, 0, 0.3), obstacleAt(0.2, 0, 0.4)}

	rep := collide(player, obstacles, nil, testObstacleRadius, testPickupRadius, 3)

	if rep.LivesLost != 2 {
		t.Errorf("LivesLost = %d, expected 2 (independent hits)", rep.LivesLost)
	}
}

func TestCollideStopsWhenLivesExhausted(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}

	obstacles := []*Obstacle{
		obstacleAt(0, 0, 0.2),
		obstacleAt(0, 0, 0.3),
		obstacleAt(0, 0, 0.4),
	}
	cols := []*Collectible{collectibleAt(0, 0, 0.1, 10)}

	rep := collide(player, obstacles, cols, testObstacleRadius, testPickupRadius, 2)

	// Scan stops at the second hit: the third obstacle is never charged,
	// and the collectible pass is skipped on a terminal frame
	if rep.LivesLost != 2 {
		t.Errorf("LivesLost = %d, expected scan to stop at 2", rep.LivesLost)
	}
	if rep.ScoreGained != 0 {
		t.Errorf("terminal frame should not award pickups, gained %d", rep.ScoreGained)
	}
}

func TestCollideEmptyCollections(t *testing.T) {
	player := core.Vec3{X: 0, Y: 0, Z: 0}

	rep := collide(player, nil, nil, testObstacleRadius, testPickupRadius, 3)

	if rep.LivesLost != 0 || rep.ScoreGained != 0 {
		t.Errorf("empty scan should report nothing, got %+v", rep)
	}
}
