// Package lanes provides the lane-catch game for the lanefall platform:
// falling tokens that score when they leave the field through a lane of
// their own colour, steered by a pointer-driven force field.
package lanes

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanefall/internal/config"
	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/games/lanes/assets"
	"github.com/vovakirdan/lanefall/internal/games/lanes/engine"
	"github.com/vovakirdan/lanefall/internal/registry"
)

// Variant selects one iteration of the game.
type Variant struct {
	ID       string
	Title    string
	DeadZone bool // Lane centering ignores small offsets
	Touch    bool // Touch gestures are accepted alongside the mouse
	Sprites  bool // Entities are drawn from the sprite table
}

// Registered variants.
var (
	Classic = Variant{ID: "lanes-classic", Title: "Lanes Classic"}
	Lanes   = Variant{ID: "lanes", Title: "Lanes", DeadZone: true, Touch: true}
	Sprites = Variant{ID: "lanes-sprites", Title: "Lanes (Sprites)", DeadZone: true, Touch: true, Sprites: true}
)

// Variants returns every variant in registration order.
func Variants() []Variant {
	return []Variant{Classic, Lanes, Sprites}
}

const (
	hudHeight  = 1
	minScreenW = 24
	minScreenH = 10
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	spritesPath      string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetSpritesPath sets a custom sprite table for the sprites variant.
func SetSpritesPath(path string) {
	spritesPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game adapts an engine.Simulation to the registry.Game interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.LanesConfig
	log     *log.Logger

	sim      *engine.Simulation
	frame    engine.Frame
	styles   engine.Styles
	palette  [engine.TokenTypeCount]core.Color
	viewport Viewport

	clock     core.Clock
	pausedAt  time.Duration
	pausedFor time.Duration

	paused   bool
	gameOver bool
	tooSmall bool
	err      error
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the variant this game plays.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset loads configuration and starts a new round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.log = logger.With("game", g.variant.ID)
	g.sim = nil
	g.frame = engine.Frame{}
	g.paused = false
	g.gameOver = false
	g.err = nil
	g.pausedAt = 0
	g.pausedFor = 0

	g.clock = rc.Clock
	if g.clock == nil {
		g.clock = core.NewMonotonicClock()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultLanesConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.styles = engine.DefaultStyles()
	for i, st := range g.styles {
		c, ok := core.ParseColor(st.Color)
		if !ok {
			c = core.ColorWhite
		}
		g.palette[i] = c
	}

	params, err := ParamsFromConfig(cfg, g.variant, rc.Seed)
	if err != nil {
		g.halt(err)
		return
	}

	opts := []engine.Option{
		engine.WithPacer(NewPacer(cfg)),
		engine.WithLogger(g.log),
		engine.WithStyles(g.styles),
	}
	if g.variant.Sprites {
		table, err := assets.Load(spritesPath)
		if err != nil {
			g.log.Warn("using default sprites", "err", err)
			table = assets.Default()
		}
		opts = append(opts, engine.WithAssets(table.Engine()))
	}

	sim, err := engine.New(params, opts...)
	if err != nil {
		g.halt(err)
		return
	}
	g.sim = sim
	g.layout()
	g.frame = sim.Frame()

	g.log.Debug("round started", "seed", rc.Seed, "tracks", params.TrackCount, "dead_zone", params.DistanceDelta)
}

// layout fits the field below the HUD.
func (g *Game) layout() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	g.tooSmall = w < minScreenW || h < minScreenH
	g.viewport = NewViewport(g.sim.Params().Field, core.NewRect(0, hudHeight, w, h-hudHeight))
}

// Step drains queued pointer events, then advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if err := g.sim.Tick(g.elapsed()); err != nil {
		g.halt(err)
	}
	g.frame = g.sim.Frame()

	return core.StepResult{State: g.State()}
}

// handlePointer translates a pointer event from screen cells to field
// coordinates and hands it to the simulation. While paused only releases
// are applied.
func (g *Game) handlePointer(ev core.PointerEvent) {
	if ev.IsTouch() && !g.variant.Touch {
		return
	}
	if g.paused && ev.Kind != core.PointerUp {
		return
	}

	ev.Pos = g.viewport.ToField(int(ev.Pos.X), int(ev.Pos.Y))
	if g.sim.HandlePointer(ev) {
		g.log.Debug("pointer", "kind", ev.Kind, "pos", ev.Pos, "gesture", ev.Gesture)
	}
}

func (g *Game) togglePause() {
	now := g.clock.Elapsed()
	if g.paused {
		g.pausedFor += now - g.pausedAt
	} else {
		g.pausedAt = now
	}
	g.paused = !g.paused
}

// elapsed is the clock reading minus time spent paused.
func (g *Game) elapsed() time.Duration {
	if g.paused {
		return g.pausedAt - g.pausedFor
	}
	return g.clock.Elapsed() - g.pausedFor
}

func (g *Game) halt(err error) {
	g.err = err
	g.gameOver = true
	g.log.Error("round ended", "err", err)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.sim != nil {
		score = g.sim.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Err:      g.err,
	}
}

// Simulation returns the running simulation, or nil if the round failed to start.
func (g *Game) Simulation() *engine.Simulation {
	return g.sim
}

// Frame returns the snapshot drawn by Render.
func (g *Game) Frame() engine.Frame {
	return g.frame
}

// Viewport returns the current field to screen mapping.
func (g *Game) Viewport() Viewport {
	return g.viewport
}
