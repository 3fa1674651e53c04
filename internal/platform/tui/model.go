package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/metrics"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// GameOptions carries the optional collaborators of a GameModel.
type GameOptions struct {
	Store   *storage.Store   // Finished runs are saved here when set
	Sound   audio.Player     // Collision cue; nil means silent
	Metrics *metrics.Metrics // nil disables metrics
}

// GameModel is the Bubble Tea model that drives one game at a fixed tick rate.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      GameOptions
	keyMapper *KeyMapper
	tracker   *core.KeyTracker
	gameState core.GameState
	now       func() time.Time

	started    bool   // Run counted as started
	runSaved   bool   // Current game over already recorded
	lastRunID  string // UUID of the last saved run
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		tracker:   core.NewKeyTracker(),
		gameState: game.State(),
		now:       time.Now,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.BlurMsg:
		m.tracker.Reset()
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused || m.gameState.Phase == "menu" {
			m.backToMenu = true
		}
	default:
		m.tracker.Press(action, m.now())
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick processes one simulation tick.
func (m GameModel) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.tracker.Frame(at)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = false
		m.runSaved = false
		m.tracker.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if !m.started && (m.gameState.Phase == "playing" || m.gameState.Ticks > 0) {
		m.started = true
		m.opts.Metrics.RunStarted(m.game.ID())
	}

	if result.Collisions > 0 {
		m.opts.Sound.PlayCollision()
	}

	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished game once.
func (m *GameModel) recordRun() {
	m.runSaved = true
	m.opts.Metrics.RunFinished(m.game.ID(), m.gameState.AliensShot)

	if m.opts.Store == nil {
		return
	}
	run, err := m.opts.Store.SaveRun(storage.Run{
		GameID:       m.game.ID(),
		Score:        m.gameState.Score,
		LivesLeft:    m.gameState.Lives,
		AliensShot:   m.gameState.AliensShot,
		AliensMissed: m.gameState.AliensMissed,
		Ticks:        m.gameState.Ticks,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		return
	}
	m.lastRunID = run.UUID
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the most recent tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// LastRunID returns the UUID of the most recently saved run, if any.
func (m GameModel) LastRunID() string {
	return m.lastRunID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
