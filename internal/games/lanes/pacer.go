package lanes

import (
	"time"

	"github.com/vovakirdan/lanefall/internal/config"
	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/games/lanes/engine"
)

// difficultyPacer drives spawn cadence and gravity from the difficulty manager.
type difficultyPacer struct {
	difficulty  *config.DifficultyManager
	interval    time.Duration
	minInterval time.Duration
	gravity     float64
}

func (p difficultyPacer) SpawnInterval(score int, tick uint64) time.Duration {
	return p.difficulty.SpawnInterval(p.interval, p.minInterval, score, tick)
}

func (p difficultyPacer) Gravity(score int, tick uint64) float64 {
	return p.difficulty.Gravity(p.gravity, score, tick)
}

// NewPacer returns the engine pacer for a configuration.
func NewPacer(cfg config.LanesConfig) engine.Pacer {
	return difficultyPacer{
		difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		interval:    cfg.Spawn.Interval(),
		minInterval: cfg.Spawn.MinInterval(),
		gravity:     cfg.Physics.Gravity,
	}
}

// ParamsFromConfig converts a configuration into engine parameters for a
// variant. Variants without a dead-zone ignore tracks.distance_delta.
func ParamsFromConfig(cfg config.LanesConfig, v Variant, seed int64) (engine.Params, error) {
	policy, err := engine.ParseSpawnPolicy(cfg.Spawn.Policy)
	if err != nil {
		return engine.Params{}, err
	}

	types := make([]engine.TokenType, 0, len(cfg.Tracks.Types))
	for _, name := range cfg.Tracks.Types {
		t, err := engine.ParseTokenType(name)
		if err != nil {
			return engine.Params{}, err
		}
		types = append(types, t)
	}

	deadZone := cfg.Tracks.DistanceDelta
	if !v.DeadZone {
		deadZone = 0
	}

	w, h := cfg.Field.Width/2, cfg.Field.Height/2
	return engine.Params{
		Field:          core.NewBounds(-w, -h, w, h),
		Gravity:        cfg.Physics.Gravity,
		Damping:        cfg.Physics.Damping,
		TrackCount:     cfg.Tracks.Count,
		TrackHalfWidth: cfg.Tracks.HalfWidth,
		TrackTypes:     types,
		DistanceDelta:  deadZone,
		ActorSize:      cfg.Actor.Size,
		ActorInset:     cfg.Actor.Inset,
		ActionDistance: cfg.Action.Distance,
		SpawnInterval:  cfg.Spawn.Interval(),
		SpawnPolicy:    policy,
		Seed:           seed,
		ScoreStep:      cfg.Score.Step,
	}, nil
}
