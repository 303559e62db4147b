package config

import (
	_ "embed"
)

//go:embed defaults/lanes.yaml
var defaultLanesYAML []byte

// DefaultLanesConfig returns the built-in configuration.
// It mirrors defaults/lanes.yaml and is used if the embedded file cannot be parsed.
func DefaultLanesConfig() LanesConfig {
	return LanesConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity: 1.0,
			Damping: 0.5,
		},
		Tracks: TracksConfig{
			Count:         4,
			HalfWidth:     40,
			DistanceDelta: 4,
			Types:         []string{"red", "green", "blue", "yellow"},
		},
		Actor: ActorConfig{
			Size:  40,
			Inset: 6,
		},
		Action: ActionConfig{
			Distance: 120,
		},
		Spawn: SpawnConfig{
			IntervalMS:    1000,
			MinIntervalMS: 350,
			Policy:        PolicyRandom,
		},
		Score: ScoreConfig{
			Step: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
				GravityMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanesYAML
}
