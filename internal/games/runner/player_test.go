package runner

import (
	"math"
	"testing"

	"github.com/skywaylabs/skyway/internal/config"
)

func testLanes() config.LaneConfig {
	return config.LaneConfig{Count: 3, Spacing: 2.0}
}

func testPhysics() config.RunnerPhysics {
	return config.RunnerPhysics{
		Gravity:      -30.0,
		JumpImpulse:  11.0,
		LateralSpeed: 12.0,
		SnapEpsilon:  0.05,
	}
}

func TestPlayerStartsCenterLane(t *testing.T) {
	p := NewPlayer(testLanes(), testPhysics())

	if p.Lane() != 1 {
		t.Errorf("player should start in lane 1, got %d", p.Lane())
	}
	if p.Pos().X != 0 {
		t.Errorf("center lane should be x=0, got %f", p.Pos().X)
	}
	if !p.Grounded() {
		t.Error("player should start grounded")
	}
}

func TestPlayerLaneBounds(t *testing.T) {
	p := NewPlayer(testLanes(), testPhysics())

	// Hammer left: lane index must never leave [0, laneCount-1]
	for i := 0; i < 10; i++ {
		p.MoveLeft()
		if p.Lane() < 0 || p.Lane() > 2 {
			t.Fatalf("lane out of bounds after MoveLeft: %d", p.Lane())
		}
	}
	if p.Lane() != 0 {
		t.Errorf("repeated MoveLeft should settle at lane 0, got %d", p.Lane())
	}

	for i := 0; i < 10; i++ {
		p.MoveRight()
		if p.Lane() < 0 || p.Lane() > 2 {
			t.Fatalf("lane out of bounds after MoveRight: %d", p.Lane())
		}
	}
	if p.Lane() != 2 {
		t.Errorf("repeated MoveRight should settle at lane 2, got %d", p.Lane())
	}
}

func TestPlayerLaneCoordinates(t *testing.T) {
	lanes := testLanes()

	expected := []float64{-2, 0, 2}
	for i, want := range expected {
		if got := laneX(i, lanes); got != want {
			t.Errorf("laneX(%d) = %f, expected %f", i, got, want)
		}
	}
}

func TestPlayerLateralApproach(t *testing.T) {
	p := NewPlayer(testLanes(), testPhysics())
	dt := 1.0 / 60.0

	p.MoveRight() // target x=2

	prev := p.Pos().X
	for i := 0; i < 300; i++ {
		p.Update(dt)
		x := p.Pos().X
		if x < prev {
			t.Fatalf("lateral approach reversed direction at tick %d: %f -> %f", i, prev, x)
		}
		if x > 2.0+1e-9 {
			t.Fatalf("lateral approach overshot target: %f", x)
		}
		prev = x
	}

	if p.Pos().X != 2.0 {
		t.Errorf("player should have snapped to x=2, got %f", p.Pos().X)
	}
}

func TestPlayerSingleJumpPerGroundedPeriod(t *testing.T) {
	p := NewPlayer(testLanes(), testPhysics())
	dt := 1.0 / 60.0

	p.Jump()
	if p.Grounded() {
		t.Fatal("player should be airborne after jump")
	}
	velAfterJump := p.VerticalVel()

	p.Update(dt)
	velAfterTick := p.VerticalVel()

	// Second jump while airborne must not re-apply the impulse
	p.Jump()
	if p.VerticalVel() != velAfterTick {
		t.Errorf("mid-air jump changed velocity: %f -> %f", velAfterTick, p.VerticalVel())
	}
	if p.VerticalVel() >= velAfterJump {
		t.Error("gravity should have reduced vertical velocity after one tick")
	}
}

func TestPlayerJumpAndLand(t *testing.T) {
	p := NewPlayer(testLanes(), testPhysics())
	dt := 1.0 / 60.0

	p.Jump()

	rose := false
	landedAt := -1
	for i := 0; i < 600; i++ {
		p.Update(dt)
		if p.Pos().Y > 0 {
			rose = true
		}
		if p.Grounded() {
			landedAt = i
			break
		}
	}

	if !rose {
		t.Error("jump should lift the player off the ground")
	}
	if landedAt < 0 {
		t.Fatal("player never landed")
	}
	if p.Pos().Y != 0 {
		t.Errorf("landing should clamp y to ground height, got %f", p.Pos().Y)
	}
	if p.VerticalVel() != 0 {
		t.Errorf("landing should zero vertical velocity, got %f", p.VerticalVel())
	}

	// Grounded again: a new jump works
	p.Jump()
	if p.Grounded() {
		t.Error("jump after landing should work")
	}
}

func TestPlayerJumpHeightSane(t *testing.T) {
	p := NewPlayer(testLanes(), testPhysics())
	dt := 1.0 / 60.0

	p.Jump()
	peak := 0.0
	for i := 0; i < 600 && !p.Grounded(); i++ {
		p.Update(dt)
		peak = math.Max(peak, p.Pos().Y)
	}

	// v²/2g analytic peak for impulse 11, gravity 30 is ~2.02
	if peak < 1.5 || peak > 2.5 {
		t.Errorf("jump peak %f outside expected range", peak)
	}
}
