package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right, A/D  - Move the spaceship
  Space            - Fire
  Enter            - Start (from the main menu)
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  invaders play invaders
  invaders play invaders_arcade --difficulty hard
  invaders play breakout_invaders --sound
  invaders play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagSound, "sound", false, "Play a sound on collisions (a fired laser touches the ship, so each shot beeps too)")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}
	if err := configureGames(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound()
	defer closeSound()

	if err := tui.Run(game, runtimeConfig(), tui.GameOptions{Store: store, Sound: sound}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
