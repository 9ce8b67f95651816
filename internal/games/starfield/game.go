// Package starfield implements a passive fly-through demo: stars stream
// past the camera with the same perspective projection the runner uses.
// It exists to showcase the platform; there is no way to lose.
package starfield

import (
	"fmt"
	"math/rand"

	"github.com/skywaylabs/skyway/internal/core"
	"github.com/skywaylabs/skyway/internal/registry"
)

const (
	starCount = 96
	maxDepth  = 40.0
	baseSpeed = 14.0
	focal     = 5.0
)

type star struct {
	pos core.Vec3
}

// Game implements the starfield demo.
type Game struct {
	stars     []star
	rng       *rand.Rand
	runtime   core.RuntimeConfig
	dt        float64
	elapsed   float64
	paused    bool
	tickCount int
}

// New creates a new starfield demo instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this demo.
func (g *Game) ID() string {
	return "starfield"
}

// Title returns the display name for this demo.
func (g *Game) Title() string {
	return "Starfield"
}

// Kind reports that the starfield is a passive demo.
func (g *Game) Kind() registry.Kind {
	return registry.KindDemo
}

// Reset initializes or restarts the demo.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DT()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.elapsed = 0
	g.paused = false
	g.tickCount = 0

	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = g.newStar(g.rng.Float64() * maxDepth)
	}
}

// newStar places a star at a random screen-space offset at the given depth.
func (g *Game) newStar(z float64) star {
	return star{pos: core.Vec3{
		X: (g.rng.Float64() - 0.5) * 12,
		Y: (g.rng.Float64() - 0.5) * 6,
		Z: z,
	}}
}

// Step advances the demo by one tick. Only pause input is honored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.elapsed += g.dt

	for i := range g.stars {
		g.stars[i].pos.Z -= baseSpeed * g.dt
		if g.stars[i].pos.Z < 0.2 {
			g.stars[i] = g.newStar(maxDepth)
		}
	}

	return core.StepResult{State: g.State()}
}

// Render draws the stars with perspective scaling.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cx := float64(dst.Width()) / 2
	cy := float64(dst.Height()) / 2

	for _, s := range g.stars {
		persp := focal / (focal + s.pos.Z)
		x := int(cx + s.pos.X*persp*float64(dst.Width())/14)
		y := int(cy + s.pos.Y*persp*float64(dst.Height())/8)

		switch {
		case persp > 0.6:
			dst.SetColor(x, y, '✦', core.ColorBrightWhite)
		case persp > 0.3:
			dst.SetColor(x, y, '*', core.ColorWhite)
		default:
			dst.SetColor(x, y, '·', core.ColorGray)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Flight time: %.0fs ", g.elapsed))
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// State reports the demo as endlessly playing; score is flight seconds.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   int(g.elapsed),
		Speed:   baseSpeed,
		Playing: true,
		Paused:  g.paused,
	}
}

// Register the demo with the registry
func init() {
	registry.Register("starfield", func() registry.Game {
		return New()
	})
}
