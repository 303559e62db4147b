package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lanefall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"x does nothing", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%s, %v), expected (%s, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerDown, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"drag", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMove, true},
		{"hover", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 0, false},
		{"release", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerUp, true},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tc.kind {
				t.Errorf("kind = %s, expected %s", ev.Kind, tc.kind)
			}
			if ev.Gesture != core.MouseGesture {
				t.Errorf("gesture = %d, expected mouse", ev.Gesture)
			}
			if ev.Pos != core.V2(float64(tc.msg.X), float64(tc.msg.Y)) {
				t.Errorf("pos = %v, expected cell coordinates", ev.Pos)
			}
		})
	}
}

func TestMapMouseToFrameQueuesInOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionMotion}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionRelease}, &frame)

	kinds := []core.PointerKind{core.PointerDown, core.PointerMove, core.PointerUp}
	if len(frame.Pointer) != len(kinds) {
		t.Fatalf("queued %d events, expected %d", len(frame.Pointer), len(kinds))
	}
	for i, k := range kinds {
		if frame.Pointer[i].Kind != k {
			t.Errorf("event %d = %s, expected %s", i, frame.Pointer[i].Kind, k)
		}
	}
}

func TestHelpShowsBindings(t *testing.T) {
	h := help.New()
	keys := DefaultKeyMap()

	view := h.View(keys)
	for _, want := range []string{"pause", "restart", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("help %q should mention %q", view, want)
		}
	}

	menu := h.View(MenuHelp{keys})
	if !strings.Contains(menu, "select") || strings.Contains(menu, "pause") {
		t.Errorf("menu help = %q", menu)
	}
}
