package lanes

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/registry"
)

func newTestGame(t *testing.T, v Variant) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock()
	g := New(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1, Clock: clock})
	if g.Simulation() == nil {
		t.Fatalf("Reset failed: %v", g.State().Err)
	}
	return g, clock
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Errorf("variant %q not registered: %v", v.ID, err)
			continue
		}
		if g.Title() != v.Title {
			t.Errorf("variant %q title = %q, expected %q", v.ID, g.Title(), v.Title)
		}
	}
}

func TestGameStepSpawnsAndFalls(t *testing.T) {
	g, clock := newTestGame(t, Lanes)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
		clock.Advance(16 * time.Millisecond)
	}

	sim := g.Simulation()
	if sim.TickCount() != 10 {
		t.Errorf("ticks = %d, expected 10", sim.TickCount())
	}
	if len(sim.Actors()) != 1 {
		t.Fatalf("actors = %d, expected 1", len(sim.Actors()))
	}
	if sim.Actors()[0].Origin.Y <= sim.Params().Field.Top {
		t.Error("actor should have fallen")
	}
	if g.Frame().Tick != 10 {
		t.Errorf("frame tick = %d, expected 10", g.Frame().Tick)
	}
}

func TestGamePointerTranslation(t *testing.T) {
	g, _ := newTestGame(t, Lanes)

	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, Pos: core.V2(40, 13), Gesture: core.MouseGesture})
	g.Step(in)

	p, ok := g.Simulation().ActionPoint()
	if !ok {
		t.Fatal("pointer down should create the action point")
	}
	expected := g.Viewport().ToField(40, 13)
	if math.Abs(p.Origin.X-expected.X) > 1e-9 || math.Abs(p.Origin.Y-expected.Y) > 1e-9 {
		t.Errorf("action point at %v, expected %v", p.Origin, expected)
	}

	in = core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerUp, Gesture: core.MouseGesture})
	g.Step(in)
	if _, ok := g.Simulation().ActionPoint(); ok {
		t.Error("pointer up should remove the action point")
	}
}

func TestClassicIgnoresTouch(t *testing.T) {
	g, _ := newTestGame(t, Classic)

	in := core.NewInputFrame()
	in.Push(core.PointerEvent{Kind: core.PointerDown, Pos: core.V2(10, 10), Gesture: 0})
	g.Step(in)

	if _, ok := g.Simulation().ActionPoint(); ok {
		t.Error("classic variant should ignore touch gestures")
	}
	if g.Simulation().Params().DistanceDelta != 0 {
		t.Error("classic variant should run without a dead-zone")
	}
}

func TestGamePauseFreezesClock(t *testing.T) {
	g, clock := newTestGame(t, Lanes)

	g.Step(core.NewInputFrame()) // first spawn at t=0

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused state")
	}

	clock.Advance(10 * time.Second)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Simulation().TickCount() != 1 {
		t.Errorf("paused game ticked to %d", g.Simulation().TickCount())
	}

	// Pointer presses are dropped while paused
	press := core.NewInputFrame()
	press.Push(core.PointerEvent{Kind: core.PointerDown, Pos: core.V2(5, 5), Gesture: core.MouseGesture})
	g.Step(press)
	if _, ok := g.Simulation().ActionPoint(); ok {
		t.Error("press while paused should be ignored")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Fatal("expected resumed state")
	}
	if g.Simulation().Stats().Spawned != 1 {
		t.Errorf("spawned = %d, paused time should not count toward spawning", g.Simulation().Stats().Spawned)
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, Sprites)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "●") && !strings.Contains(screen.String(), "◆") &&
		!strings.Contains(screen.String(), "■") && !strings.Contains(screen.String(), "▲") {
		t.Error("sprites variant should draw the token glyph")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	clock := core.NewManualClock()
	g := New(Lanes)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, Seed: 1, Clock: clock})

	g.Step(core.NewInputFrame())
	if g.Simulation().TickCount() != 0 {
		t.Error("simulation should not run in a too-small terminal")
	}
}
