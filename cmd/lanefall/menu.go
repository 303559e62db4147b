package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu, then play it",
	Long: `Start lanefall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After the game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  lanefall menu
  lanefall menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return playFromMenu(runtimeConfig())
	},
}

// playFromMenu alternates between the menu and the selected variant until
// the player quits the menu.
func playFromMenu(cfg core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		if err := play(result.GameID, cfg); err != nil {
			return err
		}
	}
}
