package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lanefall/internal/core"
)

func testTracks(score *Score) []Track {
	field := core.NewBounds(-200, -240, 200, 240)
	return LayoutTracks(field, 4, 40, 4, []TokenType{TokenRed, TokenGreen, TokenBlue, TokenYellow}, score)
}

// actorAt returns an actor whose mass point is at x.
func actorAt(x float64, track int) *Actor {
	return NewActor(1, TokenRed, core.V2(x-20, 0), 40, 6, track)
}

func TestLayoutTracks(t *testing.T) {
	tracks := testTracks(NewScore(1))

	expectedCenters := []float64{-120, -40, 40, 120}
	for i, tr := range tracks {
		if tr.Index != i {
			t.Errorf("track %d has index %d", i, tr.Index)
		}
		if tr.CenterX() != expectedCenters[i] {
			t.Errorf("track %d center = %f, expected %f", i, tr.CenterX(), expectedCenters[i])
		}
		if tr.Length != 480 || tr.Origin.Y != -240 {
			t.Errorf("track %d should span the field height", i)
		}
		if i > 0 && tracks[i-1].Bounds().Right > tr.Bounds().Left {
			t.Errorf("tracks %d and %d overlap", i-1, i)
		}
	}

	if tracks[0].Type != TokenRed || tracks[3].Type != TokenYellow {
		t.Error("track types should follow the configured order")
	}
}

func TestLayoutTracksCyclesTypes(t *testing.T) {
	field := core.NewBounds(-300, -100, 300, 100)
	tracks := LayoutTracks(field, 3, 50, 0, []TokenType{TokenBlue, TokenGreen}, NewScore(1))

	if tracks[2].Type != TokenBlue {
		t.Errorf("third track type = %s, expected types to cycle", tracks[2].Type)
	}
}

func TestTrackDistanceIsHorizontal(t *testing.T) {
	tracks := testTracks(NewScore(1))
	a := actorAt(-100, 0)
	a.Origin.Y = 1000 // vertical position must not matter

	if d := tracks[0].Distance(a); d != 20 {
		t.Errorf("Distance() = %f, expected 20", d)
	}
	if !tracks[0].IsRight(a) {
		t.Error("actor at -100 should be right of center -120")
	}
}

func TestTrackApply(t *testing.T) {
	tracks := testTracks(NewScore(1))
	gravity := core.V2(0, 1)

	tests := []struct {
		name     string
		massX    float64
		expected core.Vector2
	}{
		{"on center", -120, core.V2(0, 1)},
		{"inside dead-zone", -117, core.V2(0, 1)},
		{"at dead-zone edge", -116, core.V2(0, 1)},
		{"right of dead-zone", -110, core.V2(-1, 1)},
		{"left of dead-zone", -130, core.V2(1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tracks[0].Apply(actorAt(tc.massX, 0), gravity)
			if got != tc.expected {
				t.Errorf("Apply() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestTrackDrop(t *testing.T) {
	score := NewScore(1)
	tracks := testTracks(score)

	red := actorAt(-120, 0)
	if !tracks[0].Drop(red) {
		t.Error("red actor on red track should match")
	}
	if score.Value() != 1 {
		t.Errorf("score = %d, expected 1", score.Value())
	}

	if tracks[1].Drop(red) {
		t.Error("red actor on green track should not match")
	}
	if score.Value() != 0 {
		t.Errorf("score = %d, expected 0", score.Value())
	}

	// Shared score is floored
	tracks[2].Drop(red)
	if score.Value() != 0 {
		t.Errorf("score = %d, expected floor at 0", score.Value())
	}
}

func TestFindTrack(t *testing.T) {
	tracks := testTracks(NewScore(1))

	tests := []struct {
		name     string
		massX    float64
		current  int
		expected int
	}{
		{"nearest neighbour", -75, 0, 1},
		{"skips current even if nearest", -40, 1, 0}, // tie between 0 and 2 goes to first
		{"far right", 200, 0, 3},
		{"far left from last lane", -300, 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FindTrack(tracks, actorAt(tc.massX, tc.current))
			if err != nil {
				t.Fatalf("FindTrack() error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("FindTrack() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestFindTrackNoCandidate(t *testing.T) {
	field := core.NewBounds(-50, -50, 50, 50)
	tracks := LayoutTracks(field, 1, 40, 0, nil, NewScore(1))

	_, err := FindTrack(tracks, actorAt(45, 0))
	if !errors.Is(err, ErrNoTrack) {
		t.Errorf("FindTrack() error = %v, expected ErrNoTrack", err)
	}
}
