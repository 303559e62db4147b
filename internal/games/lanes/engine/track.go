package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lanefall/internal/core"
)

// Track is a vertical lane. Lanes are laid out side by side along x,
// without overlap, centered on the play field.
type Track struct {
	Index     int
	Type      TokenType
	Origin    core.Vector2 // Top-left corner of the lane rectangle
	HalfWidth float64
	Length    float64

	deadZone float64
	score    *Score
}

// LayoutTracks builds count lanes of width 2*halfWidth centered in field.
// Lane i gets types[i % len(types)].
func LayoutTracks(field core.Bounds, count int, halfWidth, deadZone float64, types []TokenType, score *Score) []Track {
	if len(types) == 0 {
		types = []TokenType{TokenRed, TokenGreen, TokenBlue, TokenYellow}
	}

	total := float64(count) * 2 * halfWidth
	left := field.Left + (field.Width()-total)/2

	tracks := make([]Track, count)
	for i := range tracks {
		tracks[i] = Track{
			Index:     i,
			Type:      types[i%len(types)],
			Origin:    core.V2(left+float64(i)*2*halfWidth, field.Top),
			HalfWidth: halfWidth,
			Length:    field.Height(),
			deadZone:  deadZone,
			score:     score,
		}
	}
	return tracks
}

// CenterX returns the x coordinate of the lane's center line.
func (t *Track) CenterX() float64 {
	return t.Origin.X + t.HalfWidth
}

// Bounds returns the lane rectangle.
func (t *Track) Bounds() core.Bounds {
	return core.NewBounds(t.Origin.X, t.Origin.Y, t.Origin.X+2*t.HalfWidth, t.Origin.Y+t.Length)
}

// Distance is the horizontal gap between the lane center line and the
// actor's mass point. Both points share the mass point's y, so the 2D
// distance reduces to |Δx|.
func (t *Track) Distance(a *Actor) float64 {
	m := a.Mass()
	return core.V2(t.CenterX(), m.Y).Distance(m)
}

// IsRight reports whether the actor's mass point is right of the center line.
func (t *Track) IsRight(a *Actor) bool {
	return a.Mass().X > t.CenterX()
}

// Apply adds a unit horizontal force toward the lane center when the actor is
// outside the dead-zone. Inside the dead-zone acceleration is unchanged.
func (t *Track) Apply(a *Actor, acceleration core.Vector2) core.Vector2 {
	if math.Abs(t.Distance(a)) <= t.deadZone {
		return acceleration
	}
	if t.IsRight(a) {
		return acceleration.Add(core.V2(-1, 0))
	}
	return acceleration.Add(core.V2(1, 0))
}

// Drop scores an actor leaving the field through this lane and reports
// whether its type matched.
func (t *Track) Drop(a *Actor) bool {
	if a.Type == t.Type {
		t.score.Increment()
		return true
	}
	t.score.Decrement()
	return false
}

// String implements fmt.Stringer.
func (t *Track) String() string {
	return fmt.Sprintf("track %d (%s) center=%.1f", t.Index, t.Type, t.CenterX())
}

// FindTrack returns the index of the track nearest to the actor, excluding
// the actor's current track. Ties go to the first track in index order.
// ErrNoTrack is returned when there is no other track.
func FindTrack(tracks []Track, a *Actor) (int, error) {
	best := -1
	bestDistance := math.Inf(1)

	for i := range tracks {
		if i == a.Track {
			continue
		}
		d := tracks[i].Distance(a)
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	if best < 0 {
		return -1, ErrNoTrack
	}
	return best, nil
}
