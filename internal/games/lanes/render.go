package lanes

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/games/lanes/assets"
	"github.com/vovakirdan/lanefall/internal/games/lanes/engine"
)

// Flat rendering glyphs.
const (
	TokenChar   = '█'
	EdgeChar    = '│'
	LaneBarChar = '▀'
	ActionChar  = '◎'
	MarkerChar  = '+'
)

// Render draws the last frame and the HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.drawCenteredMessage(dst, "TERMINAL TOO SMALL", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	for _, e := range g.frame.Entities {
		switch e.Kind {
		case engine.KindTrack:
			g.drawTrack(dst, e)
		case engine.KindActor:
			g.drawActor(dst, e)
		case engine.KindActionPoint:
			g.drawActionPoint(dst, e)
		case engine.KindOverlay:
			g.drawMarker(dst, e)
		}
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		subtitle := "Press R to restart"
		if g.err != nil {
			subtitle = g.err.Error() + "  |  " + subtitle
		}
		g.drawCenteredMessage(dst, "SIMULATION HALTED", subtitle)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	// Background row so falling tokens never show through
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), hudHeight), ' ', core.ColorDefault)

	st := g.frame.Stats
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.frame.Score), core.ColorBrightWhite)
	dst.DrawTextColored(14, 0,
		fmt.Sprintf("caught %d  missed %d  falling %d", st.Matched, st.Missed, len(g.frame.Actors())),
		core.ColorGray)

	title := g.variant.Title
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(title)-1, 0, title, core.ColorCyan)
}

// drawTrack draws the lane edges and a colour bar along its bottom row.
func (g *Game) drawTrack(dst *core.Screen, e engine.Entity) {
	r := g.viewport.CellRect(e.Origin, e.Size)

	dst.DrawVLine(r.X, r.Y, r.H, EdgeChar, core.ColorGray)
	dst.DrawVLine(r.Right()-1, r.Y, r.H, EdgeChar, core.ColorGray)

	if s, ok := e.Handle.(assets.Sprite); ok {
		dst.DrawVLine(r.X+r.W/2, r.Y, r.H, s.Glyph, s.Color)
	}

	dst.DrawRect(core.NewRect(r.X+1, r.Bottom()-1, r.W-2, 1), LaneBarChar, g.palette[e.Type])
}

func (g *Game) drawActor(dst *core.Screen, e engine.Entity) {
	r := g.viewport.CellRect(e.Origin, e.Size)

	if s, ok := e.Handle.(assets.Sprite); ok {
		dst.DrawRect(r, s.Glyph, s.Color)
		return
	}
	dst.DrawRect(r, TokenChar, g.palette[e.Type])
}

func (g *Game) drawActionPoint(dst *core.Screen, e engine.Entity) {
	x, y := g.viewport.ToCell(e.Origin)

	if s, ok := e.Handle.(assets.Sprite); ok {
		dst.SetColored(x, y, s.Glyph, s.Color)
		return
	}
	dst.SetColored(x, y, ActionChar, core.ColorBrightWhite)
}

// drawMarker marks the field center on empty cells only.
func (g *Game) drawMarker(dst *core.Screen, e engine.Entity) {
	x, y := g.viewport.ToCell(e.Origin)
	if dst.Get(x, y) != ' ' {
		return
	}

	if s, ok := e.Handle.(assets.Sprite); ok {
		dst.SetColored(x, y, s.Glyph, s.Color)
		return
	}
	dst.SetColored(x, y, MarkerChar, core.ColorGray)
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	maxW := w - 2
	if utf8.RuneCountInString(subtitle) > maxW-4 && maxW > 7 {
		subtitle = string([]rune(subtitle)[:maxW-7]) + "..."
	}

	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-utf8.RuneCountInString(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
