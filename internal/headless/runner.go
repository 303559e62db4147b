// Package headless runs lane-catch simulations without a terminal, on a
// manual clock, for scripted and batch play.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/lanefall/internal/config"
	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/games/lanes"
	"github.com/vovakirdan/lanefall/internal/games/lanes/engine"
)

// Options configures a headless run.
type Options struct {
	Config   config.LanesConfig
	Variant  lanes.Variant
	Seed     int64
	Ticks    uint64
	TickRate int // Simulated ticks per second; the clock advances 1/TickRate per tick
	Script   Script
	Logger   *log.Logger
}

// DefaultOptions returns a ten second run of the default variant.
func DefaultOptions() Options {
	return Options{
		Config:   config.DefaultLanesConfig(),
		Variant:  lanes.Lanes,
		Ticks:    600,
		TickRate: 60,
	}
}

// Result summarizes one run.
type Result struct {
	Seed       int64  `yaml:"seed"`
	Variant    string `yaml:"variant"`
	Ticks      uint64 `yaml:"ticks"`
	Score      int    `yaml:"score"`
	Spawned    int    `yaml:"spawned"`
	Dropped    int    `yaml:"dropped"`
	Matched    int    `yaml:"matched"`
	Missed     int    `yaml:"missed"`
	Reassigned int    `yaml:"reassigned"`
	Bounces    int    `yaml:"bounces"`
	Hash       uint64 `yaml:"hash"`
	Halted     bool   `yaml:"halted"`
	Error      string `yaml:"error,omitempty"`

	Err error `yaml:"-"` // The invariant error that halted the run
}

// Run drives one simulation for opts.Ticks ticks. A simulation that halts
// on an invariant breach is reported in the result, not as an error; the
// error is for invalid options and context cancellation.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("seed", opts.Seed, "variant", opts.Variant.ID)

	params, err := lanes.ParamsFromConfig(opts.Config, opts.Variant, opts.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}

	clock := core.NewManualClock()
	sim, err := engine.New(params,
		engine.WithClock(clock),
		engine.WithPacer(lanes.NewPacer(opts.Config)),
		engine.WithLogger(logger),
	)
	if err != nil {
		return Result{}, err
	}

	interval := core.TickInterval(opts.TickRate)
	events := opts.Script.Events
	res := Result{Seed: opts.Seed, Variant: opts.Variant.ID}

	for tick := uint64(1); tick <= opts.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		for len(events) > 0 && events[0].Tick <= tick {
			ev, err := events[0].Pointer()
			if err != nil {
				return res, err
			}
			events = events[1:]
			if ev.IsTouch() && !opts.Variant.Touch {
				continue
			}
			sim.HandlePointer(ev)
		}

		stepErr := sim.Step()
		frame := sim.Frame()
		res.Hash = res.Hash*31 + frame.Hash()

		if stepErr != nil {
			res.Halted = true
			res.Err = stepErr
			res.Error = stepErr.Error()
			break
		}
		clock.Advance(interval)
	}

	st := sim.Stats()
	res.Ticks = sim.TickCount()
	res.Score = sim.Score()
	res.Spawned = st.Spawned
	res.Dropped = st.Dropped
	res.Matched = st.Matched
	res.Missed = st.Missed
	res.Reassigned = st.Reassigned
	res.Bounces = st.Bounces

	logger.Info("run finished", "ticks", res.Ticks, "score", res.Score, "halted", res.Halted)
	return res, nil
}

// RunBatch runs opts once per seed, at most parallel at a time (unbounded
// when parallel <= 0). Each simulation stays on its own goroutine. Results
// are in seed order.
func RunBatch(ctx context.Context, opts Options, seeds []int64, parallel int) ([]Result, error) {
	results := make([]Result, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, seed := range seeds {
		g.Go(func() error {
			o := opts
			o.Seed = seed
			res, err := Run(ctx, o)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
