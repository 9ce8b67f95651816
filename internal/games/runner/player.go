package runner

import (
	"math"

	"github.com/skywaylabs/skyway/internal/config"
	"github.com/skywaylabs/skyway/internal/core"
)

// Player is the runner avatar: a discrete lane index plus smooth lateral
// approach toward the lane's x coordinate, and simple jump physics.
type Player struct {
	pos      core.Vec3
	vy       float64
	grounded bool
	lane     int
	targetX  float64
	lanes    config.LaneConfig
	phys     config.RunnerPhysics
}

// NewPlayer creates a player standing in the center lane at z=0.
func NewPlayer(lanes config.LaneConfig, phys config.RunnerPhysics) *Player {
	p := &Player{
		grounded: true,
		lanes:    lanes,
		phys:     phys,
	}
	p.lane = lanes.Count / 2
	p.targetX = laneX(p.lane, lanes)
	p.pos = core.Vec3{X: p.targetX, Y: 0, Z: 0}
	return p
}

// laneX maps a lane index to its world x coordinate. Three lanes with
// spacing 2 sit at x = -2, 0, 2.
func laneX(lane int, lanes config.LaneConfig) float64 {
	center := float64(lanes.Count-1) / 2
	return (float64(lane) - center) * lanes.Spacing
}

// Jump launches the player if grounded. Mid-air jump requests are silently
// ignored, so a second press before landing never re-applies the impulse.
func (p *Player) Jump() {
	if !p.grounded {
		return
	}
	p.vy = p.phys.JumpImpulse
	p.grounded = false
}

// MoveLeft shifts the lane target one lane left. Silently ignored at the
// leftmost lane.
func (p *Player) MoveLeft() {
	if p.lane == 0 {
		return
	}
	p.lane--
	p.targetX = laneX(p.lane, p.lanes)
}

// MoveRight shifts the lane target one lane right. Silently ignored at the
// rightmost lane.
func (p *Player) MoveRight() {
	if p.lane == p.lanes.Count-1 {
		return
	}
	p.lane++
	p.targetX = laneX(p.lane, p.lanes)
}

// Update integrates lateral approach and vertical physics over dt seconds.
func (p *Player) Update(dt float64) {
	// Lateral: damped approach toward the target lane, snapping inside
	// epsilon so the player never teleports or oscillates.
	dx := p.targetX - p.pos.X
	if math.Abs(dx) <= p.phys.SnapEpsilon {
		p.pos.X = p.targetX
	} else {
		step := p.phys.LateralSpeed * dt
		if step > 1 {
			step = 1
		}
		p.pos.X += dx * step
	}

	// Vertical: gravity integration while airborne, clamp on landing.
	if !p.grounded {
		p.vy += p.phys.Gravity * dt
		p.pos.Y += p.vy * dt
		if p.pos.Y <= 0 {
			p.pos.Y = 0
			p.vy = 0
			p.grounded = true
		}
	}
}

// Dispose releases the player's render resources.
func (p *Player) Dispose() {}

// Pos returns the player's current position.
func (p *Player) Pos() core.Vec3 {
	return p.pos
}

// Lane returns the current lane index, always in [0, laneCount-1].
func (p *Player) Lane() int {
	return p.lane
}

// Grounded reports whether the player is on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// VerticalVel returns the current vertical velocity.
func (p *Player) VerticalVel() float64 {
	return p.vy
}
