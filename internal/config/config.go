// Package config provides YAML-based game configuration loading and
// difficulty management for lanefall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// LanesConfig contains all configuration for the lane-catch game.
type LanesConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Tracks     TracksConfig     `yaml:"tracks"`
	Actor      ActorConfig      `yaml:"actor"`
	Action     ActionConfig     `yaml:"action"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Score      ScoreConfig      `yaml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field size in simulation units.
// The field is centered on the origin.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the stylized force model.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Downward acceleration per tick
	Damping float64 `yaml:"damping"` // Velocity multiplier applied each tick, in [0, 1)
}

// TracksConfig defines lane layout and centering.
type TracksConfig struct {
	Count         int      `yaml:"count"`
	HalfWidth     float64  `yaml:"half_width"`
	DistanceDelta float64  `yaml:"distance_delta"` // Dead-zone around lane center
	Types         []string `yaml:"types"`          // Token type per lane, cycled if shorter than count
}

// ActorConfig defines falling token geometry.
type ActorConfig struct {
	Size  float64 `yaml:"size"`
	Inset float64 `yaml:"inset"` // Collision box margin inside the drawn extent
}

// ActionConfig defines the pointer force field.
type ActionConfig struct {
	Distance float64 `yaml:"distance"` // Radius beyond which the action point has no effect
}

// SpawnConfig defines spawn cadence and lane/type selection.
type SpawnConfig struct {
	IntervalMS    int    `yaml:"interval_ms"`
	MinIntervalMS int    `yaml:"min_interval_ms"` // Floor when difficulty shortens the interval
	Policy        string `yaml:"policy"`          // "random" or "cycle"
}

// Interval returns the base spawn interval.
func (s SpawnConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// MinInterval returns the shortest spawn interval difficulty may reach.
func (s SpawnConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// ScoreConfig defines score bookkeeping.
type ScoreConfig struct {
	Step int `yaml:"step"`
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
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // Multiplier added to gravity at max difficulty
}

// Spawn policies.
const (
	PolicyRandom = "random"
	PolicyCycle  = "cycle"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c LanesConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size %.1fx%.1f must be positive", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Tracks.Count <= 0:
		return fmt.Errorf("%w: tracks.count must be positive", ErrInvalidConfig)
	case c.Tracks.HalfWidth <= 0:
		return fmt.Errorf("%w: tracks.half_width must be positive", ErrInvalidConfig)
	case c.Tracks.DistanceDelta < 0:
		return fmt.Errorf("%w: tracks.distance_delta must not be negative", ErrInvalidConfig)
	case float64(c.Tracks.Count)*2*c.Tracks.HalfWidth > c.Field.Width:
		return fmt.Errorf("%w: %d tracks of width %.1f do not fit a field %.1f wide",
			ErrInvalidConfig, c.Tracks.Count, 2*c.Tracks.HalfWidth, c.Field.Width)
	case c.Physics.Damping < 0 || c.Physics.Damping >= 1:
		return fmt.Errorf("%w: physics.damping %.2f must be in [0, 1)", ErrInvalidConfig, c.Physics.Damping)
	case c.Actor.Size <= 0:
		return fmt.Errorf("%w: actor.size must be positive", ErrInvalidConfig)
	case c.Actor.Inset < 0 || 2*c.Actor.Inset >= c.Actor.Size:
		return fmt.Errorf("%w: actor.inset %.1f must leave a non-empty box", ErrInvalidConfig, c.Actor.Inset)
	case c.Action.Distance <= 0:
		return fmt.Errorf("%w: action.distance must be positive", ErrInvalidConfig)
	case c.Spawn.IntervalMS <= 0:
		return fmt.Errorf("%w: spawn.interval_ms must be positive", ErrInvalidConfig)
	case c.Spawn.Policy != PolicyRandom && c.Spawn.Policy != PolicyCycle:
		return fmt.Errorf("%w: unknown spawn.policy %q", ErrInvalidConfig, c.Spawn.Policy)
	case c.Score.Step <= 0:
		return fmt.Errorf("%w: score.step must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings
// return "" and false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

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
