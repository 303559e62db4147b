package registry

import (
	"testing"

	"github.com/vovakirdan/lanefall/internal/core"
)

type fakeGame struct{ id string }

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", func() Game { return &fakeGame{id: "test-b"} })
	Register("test-a", func() Game { return &fakeGame{id: "test-a"} })

	if !Exists("test-a") || Exists("test-missing") {
		t.Error("Exists() does not match registrations")
	}

	g, err := Create("test-b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "test-b" {
		t.Errorf("created %q, expected test-b", g.ID())
	}

	// Each call returns a fresh instance
	other, _ := Create("test-b")
	if g == other {
		t.Error("Create should return a new instance per call")
	}

	if _, err := Create("test-missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test-list-z", func() Game { return &fakeGame{id: "test-list-z"} })
	Register("test-list-y", func() Game { return &fakeGame{id: "test-list-y"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	for _, g := range games {
		if g.ID == "test-list-y" && g.Title != "Fake test-list-y" {
			t.Errorf("title = %q", g.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })
}
