package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lanefall/internal/games/lanes"
	"github.com/vovakirdan/lanefall/internal/headless"
)

var (
	flagTicks    uint64
	flagScript   string
	flagSeeds    []int64
	flagParallel int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run headless simulations",
	Long: `Run the simulation without a terminal on a simulated clock and print
one YAML result per seed.

Input scripts list pointer events in field coordinates (origin at the field
center, y grows downward), applied before the given tick:

  events:
    - { tick: 30, event: down, x: -120, y: -100 }
    - { tick: 45, event: move, x: -60, y: -80 }
    - { tick: 90, event: up }
    - { tick: 95, event: down, x: 40, y: 0, touch: 1 }

Examples:
  lanefall simulate
  lanefall simulate lanes-classic --ticks 3600 --seed 7
  lanefall simulate lanes --seeds 1,2,3,4 --parallel 2 --script push.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Uint64Var(&flagTicks, "ticks", 600, "Ticks per run")
	f.StringVar(&flagScript, "script", "", "Input script YAML")
	f.Int64SliceVar(&flagSeeds, "seeds", nil, "Run once per seed (overrides --seed)")
	f.IntVar(&flagParallel, "parallel", 0, "Concurrent runs (0 = unbounded)")
}

func findVariant(id string) (lanes.Variant, error) {
	for _, v := range lanes.Variants() {
		if v.ID == id {
			return v, nil
		}
	}
	return lanes.Variant{}, fmt.Errorf("unknown variant %q, run 'lanefall list' to see available variants", id)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	opts := headless.DefaultOptions()

	if len(args) == 1 {
		v, err := findVariant(args[0])
		if err != nil {
			return err
		}
		opts.Variant = v
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts.Config = cfg
	opts.Ticks = flagTicks
	opts.TickRate = flagFPS
	opts.Logger = logger

	if flagScript != "" {
		script, err := headless.LoadScript(flagScript)
		if err != nil {
			return err
		}
		opts.Script = script
	}

	seeds := flagSeeds
	if len(seeds) == 0 {
		seeds = []int64{flagSeed}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := headless.RunBatch(ctx, opts, seeds, flagParallel)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	for _, r := range results {
		if r.Halted {
			return fmt.Errorf("seed %d halted at tick %d: %w", r.Seed, r.Ticks, r.Err)
		}
	}
	return nil
}
