package engine

import (
	"fmt"

	"github.com/vovakirdan/lanefall/internal/core"
)

// Actor is a falling token.
type Actor struct {
	ID       uint64
	Type     TokenType
	Origin   core.Vector2 // Top-left of the drawn extent
	Velocity core.Vector2
	Center   core.Vector2 // Offset from Origin to the mass point
	Size     float64
	Inset    float64

	// Track indexes the simulation's lane list. It is a lookup key only;
	// lanes are owned by the simulation.
	Track int
}

// NewActor creates an actor at rest whose mass point is its visual center.
func NewActor(id uint64, typ TokenType, origin core.Vector2, size, inset float64, track int) *Actor {
	return &Actor{
		ID:     id,
		Type:   typ,
		Origin: origin,
		Center: core.V2(size/2, size/2),
		Size:   size,
		Inset:  inset,
		Track:  track,
	}
}

// Mass returns the point used for all force and distance math.
func (a *Actor) Mass() core.Vector2 {
	return a.Origin.Add(a.Center)
}

// Integrate advances one tick. Position moves on the velocity from the end of
// the previous tick, then velocity is damped and accelerated for the next one.
func (a *Actor) Integrate(acceleration core.Vector2, damping float64) {
	a.Origin = a.Origin.Add(a.Velocity)
	a.Velocity = a.Velocity.Scalar(damping).Add(acceleration)
}

// Extent returns the drawn bounding box.
func (a *Actor) Extent() core.Bounds {
	return core.NewBounds(a.Origin.X, a.Origin.Y, a.Origin.X+a.Size, a.Origin.Y+a.Size)
}

// Bounds returns the collision box: the drawn extent shrunk by Inset on each
// side, so exits are judged a little generously.
func (a *Actor) Bounds() core.Bounds {
	return a.Extent().Inset(a.Inset)
}

// String implements fmt.Stringer.
func (a *Actor) String() string {
	return fmt.Sprintf("actor %d (%s) origin=%v velocity=%v track=%d", a.ID, a.Type, a.Origin, a.Velocity, a.Track)
}
