// Package invaders implements the Space Invaders simulation core and the
// arcade game variants built on it.
package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// StatePaused is reported while an in-game session is paused.
const StatePaused = "paused"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Variant describes one registered flavour of the game.
type Variant struct {
	ID      string
	Title   string
	HasMenu bool
	Tune    func(cfg *config.InvadersConfig) // Optional config adjustments
}

// Variants lists every registered variant.
var Variants = []Variant{
	{
		ID:      "invaders",
		Title:   "Space Invaders",
		HasMenu: true,
	},
	{
		ID:    "invaders_arcade",
		Title: "Space Invaders (Arcade)",
	},
	{
		ID:      "breakout_invaders",
		Title:   "Breakout Invaders",
		HasMenu: true,
		Tune: func(cfg *config.InvadersConfig) {
			cfg.Spaceship.Size.W *= 1.5
			cfg.Aliens.Speed *= 1.25
			cfg.Laser.Speed *= 1.2
		},
	},
}

func init() {
	for _, v := range Variants {
		registry.RegisterVariant(registry.GameInfo{
			ID:      v.ID,
			Title:   v.Title,
			HasMenu: v.HasMenu,
		}, func() registry.Game { return New(v) })
	}
}

// Game adapts a Sim to the platform's fixed-tick game interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	rng     *core.RNG
	sim     *Sim
	paused  bool

	lastReport StepReport

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game for the given variant. Call Reset before stepping.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset starts a fresh game. The config is loaded the same way every time,
// so a restart after game over replays with identical settings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	if g.variant.Tune != nil {
		g.variant.Tune(&cfg)
	}
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = core.NewRNG(runtime.Seed)
	g.sim = NewSim(cfg, g.rng, g.variant.HasMenu)
	g.paused = false
	g.lastReport = StepReport{}
}

// Resize adapts to a new terminal size without restarting. The world is in
// world units, so only the projection changes.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Config returns the effective configuration of the current game.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// LastReport returns what happened during the most recent Step.
func (g *Game) LastReport() StepReport {
	return g.lastReport
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.sim.Phase == PhaseGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.sim.Phase == PhaseInGame {
		g.paused = !g.paused
	}
	if g.paused {
		g.lastReport = StepReport{}
		return core.StepResult{State: g.State()}
	}

	g.lastReport = g.sim.Step(g.runtime.TickSeconds(), frameInput{in})

	return core.StepResult{
		State:      g.State(),
		Collisions: g.lastReport.Collisions,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	phase := g.sim.Phase.String()
	if g.paused {
		phase = StatePaused
	}
	return core.GameState{
		Score:        g.sim.Score,
		Lives:        int(g.sim.Lives), //#nosec G115 -- lives come from a small config value
		Phase:        phase,
		GameOver:     g.sim.Phase == PhaseGameOver,
		Paused:       g.paused,
		AliensShot:   g.sim.Stats.AliensShot,
		AliensMissed: g.sim.Stats.AliensCrashed + g.sim.Stats.AliensLanded,
		Ticks:        g.sim.Ticks,
	}
}

// frameInput maps platform actions onto simulation keys.
type frameInput struct {
	frame core.InputFrame
}

func (f frameInput) action(k Key) core.Action {
	switch k {
	case KeyLeft:
		return core.ActionLeft
	case KeyRight:
		return core.ActionRight
	case KeyFire:
		return core.ActionFire
	case KeyStart:
		return core.ActionStart
	default:
		panic(fmt.Sprintf("invaders: unknown key %d", k))
	}
}

func (f frameInput) Held(k Key) bool {
	return f.frame.IsHeld(f.action(k))
}

func (f frameInput) JustPressed(k Key) bool {
	return f.frame.Has(f.action(k))
}
