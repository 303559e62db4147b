package engine

import (
	"github.com/vovakirdan/lanefall/internal/core"
)

// ActionPoint is the pointer-controlled force source. It lives for exactly
// one gesture.
type ActionPoint struct {
	Origin  core.Vector2
	Gesture core.GestureID
}

// Apply adds the horizontal push of the action point to acceleration.
// The push points from the action point to the actor's mass point with its
// y component removed, scaled by 1 - d/distance where d is the full distance
// between the two. Actors farther than distance, or with no horizontal offset,
// are unaffected.
func (p *ActionPoint) Apply(a *Actor, acceleration core.Vector2, distance float64) core.Vector2 {
	v := a.Mass().Sub(p.Origin)
	d := v.Length()
	if d > distance {
		return acceleration
	}

	dir, ok := core.V2(v.X, 0).Normalize()
	if !ok {
		return acceleration
	}
	dir.Y = 0

	return acceleration.Add(dir.Scalar(1 - d/distance))
}

// Accepts reports whether an event belongs to this point's gesture.
func (p *ActionPoint) Accepts(ev core.PointerEvent) bool {
	return ev.Gesture == p.Gesture
}

// ActionSlot holds at most one ActionPoint.
type ActionSlot struct {
	point *ActionPoint
}

// Point returns the active action point, if any.
func (s *ActionSlot) Point() (ActionPoint, bool) {
	if s.point == nil {
		return ActionPoint{}, false
	}
	return *s.point, true
}

// Active reports whether a gesture is in progress.
func (s *ActionSlot) Active() bool {
	return s.point != nil
}

// Press starts a gesture at pos. It is ignored while a gesture is active.
func (s *ActionSlot) Press(pos core.Vector2, gesture core.GestureID) bool {
	if s.point != nil {
		return false
	}
	s.point = &ActionPoint{Origin: pos, Gesture: gesture}
	return true
}

// Move relocates the point if gesture owns it.
func (s *ActionSlot) Move(pos core.Vector2, gesture core.GestureID) bool {
	if s.point == nil || s.point.Gesture != gesture {
		return false
	}
	s.point.Origin = pos
	return true
}

// Release ends the gesture if gesture owns it.
func (s *ActionSlot) Release(gesture core.GestureID) bool {
	if s.point == nil || s.point.Gesture != gesture {
		return false
	}
	s.point = nil
	return true
}

// Handle applies a pointer event and reports whether it changed the slot.
// A press while a gesture is active, and any move or release from another
// gesture, are ignored.
func (s *ActionSlot) Handle(ev core.PointerEvent) bool {
	switch ev.Kind {
	case core.PointerDown:
		return s.Press(ev.Pos, ev.Gesture)
	case core.PointerMove:
		if s.point == nil || !s.point.Accepts(ev) {
			return false
		}
		return s.Move(ev.Pos, ev.Gesture)
	case core.PointerUp:
		return s.Release(ev.Gesture)
	}
	return false
}

// Clear ends any gesture in progress.
func (s *ActionSlot) Clear() {
	s.point = nil
}
