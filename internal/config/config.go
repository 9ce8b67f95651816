// Package config provides YAML-based game configuration loading and
// difficulty management for the skyway platform.
package config

// RunnerConfig contains all configuration for a lane-runner variant.
type RunnerConfig struct {
	Lanes      LaneConfig       `yaml:"lanes"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LaneConfig defines the discrete lane layout. Lane index i maps to
// x = (i - (count-1)/2) * spacing, so three lanes with spacing 2 sit at
// x = -2, 0, 2.
type LaneConfig struct {
	Count   int     `yaml:"count"`
	Spacing float64 `yaml:"spacing"`
}

// RunnerPhysics defines the player movement parameters.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // negative, units per second squared
	JumpImpulse  float64 `yaml:"jump_impulse"`  // initial vertical velocity on jump
	LateralSpeed float64 `yaml:"lateral_speed"` // damping rate of the lane approach
	SnapEpsilon  float64 `yaml:"snap_epsilon"`  // |target-x| below this snaps to target
}

// SpawnerConfig defines entity spawning behavior.
type SpawnerConfig struct {
	Interval          float64 `yaml:"interval"`           // seconds between spawn ticks
	ObstacleChance    float64 `yaml:"obstacle_chance"`    // probability an obstacle spawns per tick
	CollectibleChance float64 `yaml:"collectible_chance"` // per-lane probability for collectibles
	SpawnZ            float64 `yaml:"spawn_z"`            // forward distance where entities appear
	DespawnZ          float64 `yaml:"despawn_z"`          // entities past this z are culled
}

// ScoringConfig defines how score accumulates.
type ScoringConfig struct {
	SurvivalRate     float64 `yaml:"survival_rate"`     // points per second survived
	CollectibleValue int     `yaml:"collectible_value"` // points per pickup
}

// GameplayConfig defines session parameters.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	BaseSpeed      float64 `yaml:"base_speed"`      // forward speed at run start
	SpeedIncrement float64 `yaml:"speed_increment"` // added at every spawn tick
	MaxSpeed       float64 `yaml:"max_speed"`
	ObstacleRadius float64 `yaml:"obstacle_radius"` // collision distance for obstacles
	PickupRadius   float64 `yaml:"pickup_radius"`   // collision distance for collectibles
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // seconds shaved off spawn interval at max
	ChanceBoost       float64 `yaml:"chance_boost"`       // added to obstacle chance at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Lives track the preset as well
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}
