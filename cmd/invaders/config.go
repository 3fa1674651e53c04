package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration as YAML",
	Long: `Print the built-in configuration, ready to be copied to
~/.arcade/configs/invaders.yaml and edited.

With --effective, print the configuration a game would actually use after
applying --config and --difficulty.

Examples:
  invaders config > ~/.arcade/configs/invaders.yaml
  invaders config --effective --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagEffective {
		_, err := out.Write(config.GetDefaultYAML("invaders"))
		return err
	}

	if err := configureGames(); err != nil {
		return err
	}
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyInvadersPreset(&cfg, config.ParsePreset(flagDifficulty))

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
