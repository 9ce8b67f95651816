package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DT returns the fixed timestep in seconds for one simulation tick.
// All physics integration is driven by this value.
func (c RuntimeConfig) DT() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// GameState is the read-only view of a game exposed to the UI layer.
// The platform polls it once per frame; there are no push notifications.
type GameState struct {
	Score    int     // Current score, never decreases during a run
	Lives    int     // Remaining lives, clamped at zero
	Speed    float64 // Current forward speed, for the HUD
	Playing  bool    // True while a run is active
	GameOver bool    // True after the last life is lost, until restart
	Paused   bool    // True while the run is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
