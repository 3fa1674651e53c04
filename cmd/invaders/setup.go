package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Game flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// configureGames validates the game flags and hands them to the invaders package.
// A broken config file is reported here, before the terminal switches screens.
func configureGames() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			return err
		}
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the runs database, continuing without one on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, scores disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the speaker when --sound is set. The returned func
// releases it.
func openSound() (audio.Player, func()) {
	if !flagSound {
		return audio.Nop{}, func() {}
	}

	cue := audio.NewCue()
	if err := cue.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
		return audio.Nop{}, func() {}
	}
	return cue, cue.Close
}
