package runner

import "github.com/skywaylabs/skyway/internal/core"

// Entity is the contract for any moving object in the runner world.
// Obstacles and collectibles travel toward the player; the player entity
// moves laterally between lanes and vertically when jumping.
type Entity interface {
	// Update advances the entity by dt seconds.
	Update(dt float64)

	// Dispose releases any render-surface resources held by the entity.
	// Called exactly once, when the entity leaves play.
	Dispose()

	// Pos returns the entity's current world position.
	Pos() core.Vec3
}

// Stage is the opaque render surface entities are attached to. The sim
// tells the stage when entities enter and leave play; it never knows how
// the stage draws them.
type Stage interface {
	Add(e Entity)
	Remove(e Entity)
}

// NopStage discards attach/detach notifications. Used for headless runs
// and as the default until a platform attaches a real surface.
type NopStage struct{}

func (NopStage) Add(Entity)    {}
func (NopStage) Remove(Entity) {}

// pace is the shared forward speed of the world. The session owns it and
// ramps it up; entities read it every update.
type pace struct {
	speed float64
}

// Obstacle is a lane blocker. Touching one costs a life.
type Obstacle struct {
	pos      core.Vec3
	lane     int
	pace     *pace
	disposed bool
}

func newObstacle(lane int, x, z float64, p *pace) *Obstacle {
	return &Obstacle{
		pos:  core.Vec3{X: x, Y: 0, Z: z},
		lane: lane,
		pace: p,
	}
}

// Update moves the obstacle toward the player at the current world speed.
func (o *Obstacle) Update(dt float64) {
	o.pos.Z -= o.pace.speed * dt
}

// Dispose releases the obstacle's render resources.
func (o *Obstacle) Dispose() {
	o.disposed = true
}

// Pos returns the obstacle's current position.
func (o *Obstacle) Pos() core.Vec3 {
	return o.pos
}

// Lane returns the lane index the obstacle occupies.
func (o *Obstacle) Lane() int {
	return o.lane
}

// Disposed reports whether Dispose has been called.
func (o *Obstacle) Disposed() bool {
	return o.disposed
}

// Collectible is a pickup worth points.
type Collectible struct {
	pos      core.Vec3
	lane     int
	value    int
	pace     *pace
	disposed bool
}

func newCollectible(lane int, x, z float64, value int, p *pace) *Collectible {
	return &Collectible{
		pos:   core.Vec3{X: x, Y: 0.5, Z: z},
		lane:  lane,
		value: value,
		pace:  p,
	}
}

// Update moves the collectible toward the player at the current world speed.
func (c *Collectible) Update(dt float64) {
	c.pos.Z -= c.pace.speed * dt
}

// Dispose releases the collectible's render resources.
func (c *Collectible) Dispose() {
	c.disposed = true
}

// Pos returns the collectible's current position.
func (c *Collectible) Pos() core.Vec3 {
	return c.pos
}

// Lane returns the lane index the collectible occupies.
func (c *Collectible) Lane() int {
	return c.lane
}

// Value returns the score awarded when the collectible is picked up.
func (c *Collectible) Value() int {
	return c.value
}

// Disposed reports whether Dispose has been called.
func (c *Collectible) Disposed() bool {
	return c.disposed
}
