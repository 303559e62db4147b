package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/games/lanes"
	"github.com/vovakirdan/lanefall/internal/platform/tui"
	"github.com/vovakirdan/lanefall/internal/registry"
)

var flagSprites string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant, or pick one from a menu.

Controls:
  Mouse drag - Push nearby tokens away from the pointer
  P/Esc      - Pause
  R          - Restart (after the simulation halts)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Variants:
  lanes-classic - Lanes pull tokens to their center at all times
  lanes         - Tokens near a lane center are left alone; touch gestures accepted
  lanes-sprites - As lanes, drawn with glyph sprites (see --sprites)

Difficulty options:
  easy   - Slow spawns and light gravity, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Fast spawns and heavy gravity from 70% difficulty
  fixed  - No progression

Examples:
  lanefall play lanes
  lanefall play lanes-classic --difficulty easy
  lanefall play lanes-sprites --sprites ./my-sprites.yaml
  lanefall play lanes --config ./lanes.yaml --log-file /tmp/lanefall.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a custom sprite table YAML")
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	if len(args) == 0 {
		return playFromMenu(cfg)
	}
	return play(args[0], cfg)
}

// play runs one variant until the player quits.
func play(gameID string, cfg core.RuntimeConfig) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'lanefall list' to see available variants", gameID)
	}

	lanes.SetSpritesPath(flagSprites)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	logger.Info("playing", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game ended with error", "game", gameID, "err", err)
		return err
	}
	return nil
}
