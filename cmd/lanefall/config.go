package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanefall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration lanefall would play with, after the config
search path and --difficulty are applied. Use it as a starting point for
~/.lanefall/configs/lanes.yaml.

Examples:
  lanefall config > ~/.lanefall/configs/lanes.yaml
  lanefall config --difficulty hard
  lanefall config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
