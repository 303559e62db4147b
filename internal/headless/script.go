package headless

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lanefall/internal/core"
)

// ScriptEvent is one pointer event in an input script. Coordinates are in
// field space. Touch, when set, makes the event a touch gesture with that id.
type ScriptEvent struct {
	Tick  uint64  `yaml:"tick"`
	Event string  `yaml:"event"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Touch *int    `yaml:"touch,omitempty"`
}

// Pointer converts the entry to a pointer event.
func (e ScriptEvent) Pointer() (core.PointerEvent, error) {
	ev := core.PointerEvent{Pos: core.V2(e.X, e.Y), Gesture: core.MouseGesture}

	switch e.Event {
	case "down":
		ev.Kind = core.PointerDown
	case "move":
		ev.Kind = core.PointerMove
	case "up":
		ev.Kind = core.PointerUp
	default:
		return ev, fmt.Errorf("tick %d: unknown event %q", e.Tick, e.Event)
	}

	if e.Touch != nil {
		if *e.Touch < 0 {
			return ev, fmt.Errorf("tick %d: touch id %d must not be negative", e.Tick, *e.Touch)
		}
		ev.Gesture = core.GestureID(*e.Touch)
	}
	return ev, nil
}

// Script is an input script sorted by tick. Events on the same tick keep
// file order and are applied before that tick runs.
type Script struct {
	Events []ScriptEvent `yaml:"events"`
}

// ParseScript decodes and validates a YAML input script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	for _, e := range s.Events {
		if _, err := e.Pointer(); err != nil {
			return Script{}, err
		}
		if e.Tick == 0 {
			return Script{}, fmt.Errorf("event %q: ticks start at 1", e.Event)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Tick < s.Events[j].Tick
	})
	return s, nil
}

// LoadScript reads an input script from path.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}
