package engine

import (
	"math"
	"time"

	"github.com/vovakirdan/lanefall/internal/core"
)

// EntityKind classifies drawable entities.
type EntityKind int

const (
	KindTrack EntityKind = iota
	KindActor
	KindActionPoint
	KindOverlay
)

// String returns the kind name.
func (k EntityKind) String() string {
	switch k {
	case KindTrack:
		return "track"
	case KindActor:
		return "actor"
	case KindActionPoint:
		return "action"
	case KindOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// ActionPointRadius is the drawn radius of the action point.
const ActionPointRadius = 20

// Entity is one drawable item. Handle is the host-supplied asset for Asset,
// passed through untouched.
type Entity struct {
	Kind   EntityKind
	ID     uint64
	Origin core.Vector2
	Size   core.Vector2
	Type   TokenType
	Asset  string
	Handle any
}

// Stats counts lifecycle events since the simulation started.
type Stats struct {
	Spawned    int
	Dropped    int
	Matched    int
	Missed     int
	Reassigned int
	Bounces    int
}

// Frame is the snapshot a renderer draws after each tick. Entities are in
// draw order: tracks, actors, the action point, overlays.
type Frame struct {
	Tick     uint64
	Elapsed  time.Duration
	Field    core.Bounds
	Entities []Entity
	Score    int
	Stats    Stats
	Halted   bool
}

// Hash returns a simple hash of the frame for determinism testing.
// Elapsed time and asset handles are not included.
func (f *Frame) Hash() uint64 {
	h := f.Tick
	h = h*31 + uint64(f.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(f.Stats.Spawned)
	h = h*31 + uint64(f.Stats.Dropped)
	h = h*31 + uint64(f.Stats.Matched)

	for _, e := range f.Entities {
		h = h*31 + uint64(e.Kind)
		h = h*31 + e.ID
		h = h*31 + math.Float64bits(e.Origin.X)
		h = h*31 + math.Float64bits(e.Origin.Y)
		h = h*31 + uint64(e.Type)
	}
	return h
}

// Actors returns the actor entities of the frame.
func (f *Frame) Actors() []Entity {
	var out []Entity
	for _, e := range f.Entities {
		if e.Kind == KindActor {
			out = append(out, e)
		}
	}
	return out
}
