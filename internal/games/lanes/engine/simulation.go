package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanefall/internal/core"
)

// Option configures a Simulation.
type Option func(*Simulation)

// WithClock sets the clock used by Step. Defaults to a MonotonicClock.
func WithClock(c core.Clock) Option {
	return func(s *Simulation) {
		s.clock = c
	}
}

// WithPacer replaces the fixed spawn interval and gravity.
func WithPacer(p Pacer) Option {
	return func(s *Simulation) {
		s.pacer = p
	}
}

// WithLogger sets the logger for lifecycle and failure events.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithAssets supplies the asset table handles are resolved from.
func WithAssets(a Assets) Option {
	return func(s *Simulation) {
		s.assets = a
	}
}

// WithStyles replaces the type to asset-name table.
func WithStyles(st Styles) Option {
	return func(s *Simulation) {
		s.styles = st
	}
}

// Simulation owns the lanes, the live actors, the action slot and the score,
// and advances them one frame per Tick.
type Simulation struct {
	params Params
	clock  core.Clock
	pacer  Pacer
	logger *log.Logger
	assets Assets
	styles Styles

	tracks  []Track
	actors  []*Actor
	action  ActionSlot
	score   *Score
	spawner *Spawner

	tick      uint64
	elapsed   time.Duration
	lastSpawn time.Duration
	hasSpawn  bool
	nextID    uint64
	stats     Stats
	err       error
}

// New creates a simulation with no actors. The first tick spawns one.
func New(p Params, opts ...Option) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		params: p,
		pacer:  fixedPacer{interval: p.SpawnInterval, gravity: p.Gravity},
		styles: DefaultStyles(),
		score:  NewScore(p.ScoreStep),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = core.NewMonotonicClock()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.tracks = LayoutTracks(p.Field, p.TrackCount, p.TrackHalfWidth, p.DistanceDelta, p.TrackTypes, s.score)
	s.spawner = NewSpawner(p.SpawnPolicy, p.Seed)
	s.actors = make([]*Actor, 0, 16)

	return s, nil
}

// Step ticks the simulation at the clock's current elapsed time.
func (s *Simulation) Step() error {
	return s.Tick(s.clock.Elapsed())
}

// Tick advances the whole simulation by one frame. elapsed is the
// simulation clock reading and only gates spawning.
//
// Per actor, in order: accumulate gravity, action point and lane forces;
// integrate; move to the nearest other lane if it left its lane's band;
// reflect off the side walls; despawn and score if it fully left through the
// bottom. Then spawn if the interval has passed.
//
// A non-nil error is an *InvariantError. The simulation is halted afterwards
// and every later Tick returns the same error.
func (s *Simulation) Tick(elapsed time.Duration) error {
	if s.err != nil {
		return s.err
	}

	s.tick++
	s.elapsed = elapsed

	gravity := core.V2(0, s.pacer.Gravity(s.score.Value(), s.tick))
	live := make([]*Actor, 0, len(s.actors)+1)

	for _, a := range s.actors {
		// 1. Forces
		acc := gravity
		if p := s.action.point; p != nil {
			acc = p.Apply(a, acc, s.params.ActionDistance)
		}
		acc = s.tracks[a.Track].Apply(a, acc)

		// 2. Integrate
		a.Integrate(acc, s.params.Damping)
		if !a.Origin.IsFinite() || !a.Velocity.IsFinite() {
			return s.fail("integrate", a, ErrInvalidPosition)
		}

		// 3. Lane membership
		if track := &s.tracks[a.Track]; track.Distance(a) > track.HalfWidth {
			next, err := FindTrack(s.tracks, a)
			if err != nil {
				return s.fail("reassign", a, err)
			}
			s.logger.Debug("actor changed lane", "actor", a.ID, "from", a.Track, "to", next)
			a.Track = next
			s.stats.Reassigned++
		}

		// 4. Side walls
		flags := s.params.Field.Test(a.Bounds())
		if (flags.Reached(core.SideLeft) && a.Velocity.X < 0) ||
			(flags.Reached(core.SideRight) && a.Velocity.X > 0) {
			a.Velocity.X = -a.Velocity.X
			s.stats.Bounces++
		}

		// 5. Bottom exit
		if flags.Crossed(core.SideBottom) {
			s.drop(a)
			continue
		}

		live = append(live, a)
	}

	s.actors = live

	// 6. Spawn
	interval := s.pacer.SpawnInterval(s.score.Value(), s.tick)
	if !s.hasSpawn || elapsed-s.lastSpawn > interval {
		lane, typ := s.spawner.Next(s.tracks)
		s.Spawn(lane, typ)
		s.lastSpawn = elapsed
		s.hasSpawn = true
	}

	return nil
}

// drop scores a bottom exit through the actor's lane.
func (s *Simulation) drop(a *Actor) {
	track := &s.tracks[a.Track]
	matched := track.Drop(a)

	s.stats.Dropped++
	if matched {
		s.stats.Matched++
	} else {
		s.stats.Missed++
	}
	s.logger.Debug("actor dropped",
		"actor", a.ID, "type", a.Type, "track", track.Index, "matched", matched, "score", s.score.Value())
}

// fail halts the simulation with an invariant error for actor a.
func (s *Simulation) fail(op string, a *Actor, err error) error {
	s.err = &InvariantError{Op: op, Tick: s.tick, Actor: *a, Err: err}
	s.logger.Error("simulation halted",
		"op", op, "tick", s.tick, "actor", a.ID, "type", a.Type,
		"origin", a.Origin, "velocity", a.Velocity, "track", a.Track, "err", err)
	return s.err
}

// Spawn places a new actor at rest at the top of a lane, centered on it.
// Out-of-range lanes are clamped.
func (s *Simulation) Spawn(lane int, typ TokenType) *Actor {
	lane = core.Clamp(lane, 0, len(s.tracks)-1)
	track := &s.tracks[lane]

	size := s.params.ActorSize
	origin := core.V2(track.CenterX()-size/2, s.params.Field.Top)

	s.nextID++
	a := NewActor(s.nextID, typ, origin, size, s.params.ActorInset, lane)
	s.actors = append(s.actors, a)
	s.stats.Spawned++

	s.logger.Debug("actor spawned", "actor", a.ID, "type", typ, "track", lane)
	return a
}

// HandlePointer applies a pointer or touch event to the action slot.
// Coordinates are in field space, origin at the field center. Events must be
// applied between ticks, never during one.
func (s *Simulation) HandlePointer(ev core.PointerEvent) bool {
	return s.action.Handle(ev)
}

// PointerDown starts a mouse gesture at (x, y).
func (s *Simulation) PointerDown(x, y float64) bool {
	return s.HandlePointer(core.PointerEvent{Kind: core.PointerDown, Pos: core.V2(x, y), Gesture: core.MouseGesture})
}

// PointerMove relocates the mouse gesture.
func (s *Simulation) PointerMove(x, y float64) bool {
	return s.HandlePointer(core.PointerEvent{Kind: core.PointerMove, Pos: core.V2(x, y), Gesture: core.MouseGesture})
}

// PointerUp ends the mouse gesture.
func (s *Simulation) PointerUp() bool {
	return s.HandlePointer(core.PointerEvent{Kind: core.PointerUp, Gesture: core.MouseGesture})
}

// Tracks returns the lanes in index order.
func (s *Simulation) Tracks() []Track {
	return s.tracks
}

// Actors returns the live actors. The slice is owned by the simulation and
// only valid until the next Tick.
func (s *Simulation) Actors() []*Actor {
	return s.actors
}

// ActionPoint returns the active action point, if any.
func (s *Simulation) ActionPoint() (ActionPoint, bool) {
	return s.action.Point()
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score.Value()
}

// Stats returns lifecycle counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// TickCount returns the number of ticks run.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// Params returns the parameters the simulation was built with.
func (s *Simulation) Params() Params {
	return s.params
}

// Err returns the fatal error that halted the simulation, if any.
func (s *Simulation) Err() error {
	return s.err
}

// Frame builds the drawable snapshot of the current state.
func (s *Simulation) Frame() Frame {
	entities := make([]Entity, 0, len(s.tracks)+len(s.actors)+2)

	for i := range s.tracks {
		t := &s.tracks[i]
		name := s.styles[t.Type].Track
		entities = append(entities, Entity{
			Kind:   KindTrack,
			ID:     uint64(t.Index), //#nosec G115 -- lane index is never negative
			Origin: t.Origin,
			Size:   core.V2(2*t.HalfWidth, t.Length),
			Type:   t.Type,
			Asset:  name,
			Handle: s.assets.Lookup(name),
		})
	}

	for _, a := range s.actors {
		name := s.styles[a.Type].Token
		entities = append(entities, Entity{
			Kind:   KindActor,
			ID:     a.ID,
			Origin: a.Origin,
			Size:   core.V2(a.Size, a.Size),
			Type:   a.Type,
			Asset:  name,
			Handle: s.assets.Lookup(name),
		})
	}

	if p, ok := s.action.Point(); ok {
		entities = append(entities, Entity{
			Kind:   KindActionPoint,
			Origin: p.Origin,
			Size:   core.V2(2*ActionPointRadius, 2*ActionPointRadius),
			Asset:  AssetAction,
			Handle: s.assets.Lookup(AssetAction),
		})
	}

	entities = append(entities, Entity{
		Kind:   KindOverlay,
		Origin: core.V2(0, 0),
		Asset:  AssetMarker,
		Handle: s.assets.Lookup(AssetMarker),
	})

	return Frame{
		Tick:     s.tick,
		Elapsed:  s.elapsed,
		Field:    s.params.Field,
		Entities: entities,
		Score:    s.score.Value(),
		Stats:    s.stats,
		Halted:   s.err != nil,
	}
}
