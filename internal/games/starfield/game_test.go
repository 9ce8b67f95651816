package starfield

import (
	"testing"

	"github.com/skywaylabs/skyway/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func TestStarfieldRecyclesStars(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		g.Step(in)
		for _, s := range g.stars {
			if s.pos.Z < 0.2-1e-9 || s.pos.Z > maxDepth {
				t.Fatalf("star depth %f outside [0.2, %f]", s.pos.Z, maxDepth)
			}
		}
	}
}

func TestStarfieldClockAdvances(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(in)
	}

	// Allow one unit of float accumulation slack
	if got := g.State().Score; got < 1 || got > 2 {
		t.Errorf("flight time after 2s = %d, expected ~2", got)
	}
}

func TestStarfieldPause(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause command should pause the demo")
	}

	before := g.elapsed
	in := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(in)
	}
	if g.elapsed != before {
		t.Error("paused demo should not advance")
	}
}
