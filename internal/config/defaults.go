package config

import (
	_ "embed"
)

//go:embed defaults/astro.yaml
var defaultAstroYAML []byte

//go:embed defaults/neon.yaml
var defaultNeonYAML []byte

// DefaultRunnerConfig returns the hardcoded fallback configuration for the
// astro runner. Used only if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lanes: LaneConfig{
			Count:   3,
			Spacing: 2.0,
		},
		Physics: RunnerPhysics{
			Gravity:      -30.0,
			JumpImpulse:  11.0,
			LateralSpeed: 12.0,
			SnapEpsilon:  0.05,
		},
		Spawner: SpawnerConfig{
			Interval:          2.5,
			ObstacleChance:    0.7,
			CollectibleChance: 0.6,
			SpawnZ:            30.0,
			DespawnZ:          -2.0,
		},
		Scoring: ScoringConfig{
			SurvivalRate:     10.0,
			CollectibleValue: 10,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			BaseSpeed:      10.0,
			SpeedIncrement: 0.5,
			MaxSpeed:       28.0,
			ObstacleRadius: 1.0,
			PickupRadius:   0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 1.0,
				ChanceBoost:       0.2,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a runner variant.
// Returns nil for unknown variants.
func DefaultYAML(variant string) []byte {
	switch variant {
	case "astro":
		return defaultAstroYAML
	case "neon":
		return defaultNeonYAML
	default:
		return nil
	}
}
