package engine

import (
	"testing"

	"github.com/vovakirdan/lanefall/internal/core"
)

func TestActorIntegrationOrder(t *testing.T) {
	a := NewActor(1, TokenRed, core.V2(0, 0), 40, 0, 0)
	a.Velocity = core.V2(2, 0)

	a.Integrate(core.V2(0, 1), 0.5)

	// Position moves on the old velocity, then velocity is damped and accelerated
	if a.Origin != core.V2(2, 0) {
		t.Errorf("position = %v, expected (2, 0)", a.Origin)
	}
	if a.Velocity != core.V2(1, 1) {
		t.Errorf("velocity = %v, expected (1, 1)", a.Velocity)
	}
}

func TestActorMass(t *testing.T) {
	a := NewActor(1, TokenRed, core.V2(10, 20), 40, 0, 0)
	if a.Mass() != core.V2(30, 40) {
		t.Errorf("Mass() = %v, expected (30, 40)", a.Mass())
	}
}

func TestActorBoundsAreInset(t *testing.T) {
	a := NewActor(1, TokenRed, core.V2(0, 0), 40, 6, 0)

	if a.Extent() != core.NewBounds(0, 0, 40, 40) {
		t.Errorf("Extent() = %+v", a.Extent())
	}
	if a.Bounds() != core.NewBounds(6, 6, 34, 34) {
		t.Errorf("Bounds() = %+v, expected inset by 6", a.Bounds())
	}
}
