// lanefall is a terminal arcade game: steer falling tokens into the lane of
// their own colour with the mouse.
//
// Usage:
//
//	lanefall list               - List available variants
//	lanefall play [variant]     - Play a variant (menu when omitted)
//	lanefall menu               - Pick a variant interactively, then play
//	lanefall simulate [variant] - Run headless simulations
//	lanefall config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom lanes.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanefall/internal/config"
	"github.com/vovakirdan/lanefall/internal/games/lanes"
	"github.com/vovakirdan/lanefall/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanefall",
	Short: "Lanefall - catch falling tokens in the matching lane",
	Long: `Lanefall is a terminal arcade game. Tokens fall down coloured lanes;
press and drag the mouse to push them sideways so each one leaves the field
through a lane of its own colour.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  simulate  - Headless runs with optional input scripts
  config    - Print the effective configuration

Examples:
  lanefall list
  lanefall play lanes
  lanefall play lanes-sprites --difficulty hard
  lanefall simulate lanes --seeds 1,2,3 --ticks 3600
  lanefall config --difficulty easy`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom lanes.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags and builds the logger. Interactive commands
// own the terminal, so without --log-file they log nowhere.
func setup(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive")
	}

	opts := logging.Options{
		Level:     flagLogLevel,
		File:      flagLogFile,
		Timestamp: true,
	}
	if flagLogFile == "" && isInteractive(cmd) {
		opts.Output = io.Discard
	}

	l, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	lanes.SetLogger(logger.WithPrefix("lanes"))
	lanes.SetConfigPath(flagConfig)
	lanes.SetDifficultyPreset(flagDifficulty)

	logger.Debug("starting", "command", cmd.Name())
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd == playCmd || cmd == menuCmd
}

// loadConfig returns the configuration selected by --config and --difficulty.
func loadConfig() (config.LanesConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.LanesConfig{}, err
	}
	if preset, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}
