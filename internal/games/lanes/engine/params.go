package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/lanefall/internal/core"
)

// Params holds the tunable constants of a simulation.
type Params struct {
	Field core.Bounds // Play field, centered on the origin

	Gravity float64 // Downward acceleration per tick
	Damping float64 // Velocity multiplier per tick, below 1

	TrackCount     int
	TrackHalfWidth float64
	TrackTypes     []TokenType
	DistanceDelta  float64 // Lane dead-zone

	ActorSize  float64
	ActorInset float64

	ActionDistance float64

	SpawnInterval time.Duration
	SpawnPolicy   SpawnPolicy
	Seed          int64

	ScoreStep int
}

// DefaultParams returns a playable four-lane setup on a 400x480 field.
func DefaultParams() Params {
	return Params{
		Field:          core.NewBounds(-200, -240, 200, 240),
		Gravity:        1.0,
		Damping:        0.5,
		TrackCount:     4,
		TrackHalfWidth: 40,
		TrackTypes:     []TokenType{TokenRed, TokenGreen, TokenBlue, TokenYellow},
		DistanceDelta:  4,
		ActorSize:      40,
		ActorInset:     6,
		ActionDistance: 120,
		SpawnInterval:  time.Second,
		SpawnPolicy:    SpawnRandom,
		ScoreStep:      1,
	}
}

// Validate checks that the parameters describe a usable simulation.
func (p Params) Validate() error {
	if p.Field.Width() <= 0 || p.Field.Height() <= 0 {
		return fmt.Errorf("engine: empty play field %+v", p.Field)
	}
	if p.TrackCount <= 0 || p.TrackHalfWidth <= 0 {
		return fmt.Errorf("engine: need at least one track with positive width")
	}
	if float64(p.TrackCount)*2*p.TrackHalfWidth > p.Field.Width() {
		return fmt.Errorf("engine: %d tracks do not fit in a field %.1f wide", p.TrackCount, p.Field.Width())
	}
	if p.Damping < 0 || p.Damping >= 1 {
		return fmt.Errorf("engine: damping %.2f must be in [0, 1)", p.Damping)
	}
	if p.ActorSize <= 0 || p.ActionDistance <= 0 || p.SpawnInterval <= 0 {
		return fmt.Errorf("engine: actor size, action distance and spawn interval must be positive")
	}
	return nil
}

// Pacer adjusts spawn cadence and gravity as a round progresses.
type Pacer interface {
	SpawnInterval(score int, tick uint64) time.Duration
	Gravity(score int, tick uint64) float64
}

// fixedPacer always returns the configured values.
type fixedPacer struct {
	interval time.Duration
	gravity  float64
}

func (f fixedPacer) SpawnInterval(int, uint64) time.Duration { return f.interval }
func (f fixedPacer) Gravity(int, uint64) float64             { return f.gravity }
