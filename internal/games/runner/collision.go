package runner

import "github.com/skywaylabs/skyway/internal/core"

// CollisionReport is the outcome of one frame's collision scan. The game
// loop applies the deltas and removes the listed entities.
type CollisionReport struct {
	LivesLost    int
	ScoreGained  int
	HitObstacles []*Obstacle
	Consumed     []*Collectible
}

// collide scans active entities against the player position using simple
// distance thresholds. Obstacles are checked in reverse order so callers
// can remove the reported entities without re-indexing; every obstacle in
// range this frame is charged as an independent hit, so lives can drop by
// more than one in a single tick. The scan stops as soon as the remaining
// lives are exhausted, and the collectible pass is skipped entirely on a
// terminal frame.
func collide(player core.Vec3, obstacles []*Obstacle, collectibles []*Collectible,
	obstacleRadius, pickupRadius float64, lives int) CollisionReport {

	var rep CollisionReport

	for i := len(obstacles) - 1; i >= 0; i-- {
		o := obstacles[i]
		if player.Dist(o.Pos()) >= obstacleRadius {
			continue
		}
		rep.LivesLost++
		rep.HitObstacles = append(rep.HitObstacles, o)
		if rep.LivesLost >= lives {
			return rep
		}
	}

	for i := len(collectibles) - 1; i >= 0; i-- {
		c := collectibles[i]
		if player.Dist(c.Pos()) >= pickupRadius {
			continue
		}
		rep.ScoreGained += c.Value()
		rep.Consumed = append(rep.Consumed, c)
	}

	return rep
}
