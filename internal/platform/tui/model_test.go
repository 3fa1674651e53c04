package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames     []core.InputFrame
	state      core.GameState
	collisions int
	resets     int
	resized    [2]int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Resize(width, height int) { g.resized = [2]int{width, height} }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: "playing", Lives: 3}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{State: g.state, Collisions: g.collisions}
}

type countingPlayer struct{ plays int }

func (p *countingPlayer) PlayCollision() { p.plays++ }

// fakeClock drives the model's key tracker deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel(t *testing.T, game registry.Game, opts GameOptions) (GameModel, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	m := NewGameModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.now = clock.now
	return m, clock
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func TestGameModelKeyReachesGame(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, GameOptions{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))

	if len(game.frames) != 1 {
		t.Fatalf("Expected 1 step, got %d", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionFire) || !game.frames[0].IsHeld(core.ActionFire) {
		t.Error("Fire should be just pressed and held on the first tick")
	}

	// The edge is consumed; the key stays held inside the hold window.
	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	if game.frames[1].Has(core.ActionFire) {
		t.Error("Fire should not re-trigger without a new key event")
	}
	if !game.frames[1].IsHeld(core.ActionFire) {
		t.Error("Fire should still be held within the hold window")
	}

	// Past the hold window the key is released.
	_, _ = update(t, m, TickMsg(clock.advance(200*time.Millisecond)))
	if game.frames[2].IsHeld(core.ActionFire) {
		t.Error("Fire should be released after the hold window")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &fakeGame{}, GameOptions{})

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, GameOptions{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Back should be ignored while playing")
	}

	game.state.GameOver = true
	game.state.Phase = "gameover"
	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Back should return to the menu after game over")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m, clock := newTestModel(t, game, GameOptions{Store: store})

	game.state = core.GameState{Phase: "gameover", GameOver: true, Score: 12, AliensShot: 4, AliensMissed: 3, Ticks: 900}
	for range 3 {
		m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].Score != 12 || runs[0].AliensShot != 4 || runs[0].AliensMissed != 3 {
		t.Errorf("Saved run = %+v", runs[0])
	}
	if m.LastRunID() != runs[0].UUID {
		t.Errorf("LastRunID = %q, expected %q", m.LastRunID(), runs[0].UUID)
	}
}

func TestGameModelRestartResetsGame(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, GameOptions{})
	resets := game.resets

	game.state = core.GameState{Phase: "gameover", GameOver: true}
	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	m, _ = update(t, m, runeKey("r"))
	_, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))

	if game.resets != resets+1 {
		t.Errorf("Restart should reset the game once, resets = %d", game.resets-resets)
	}
	if game.state.GameOver {
		t.Error("Game should be playing again after restart")
	}
}

func TestGameModelCollisionCue(t *testing.T) {
	game := &fakeGame{}
	player := &countingPlayer{}
	m, clock := newTestModel(t, game, GameOptions{Sound: player})

	m, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))
	game.collisions = 2
	_, _ = update(t, m, TickMsg(clock.advance(16*time.Millisecond)))

	if player.plays != 1 {
		t.Errorf("Expected one cue for the colliding tick, got %d", player.plays)
	}
}

func TestGameModelResize(t *testing.T) {
	game := &fakeGame{}
	m, _ := newTestModel(t, game, GameOptions{})
	resets := game.resets

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("Resize not forwarded, got %v", game.resized)
	}
	if game.resets != resets {
		t.Error("A resizable game should not be reset")
	}
	if !strings.HasPrefix(m.View(), "fake") {
		t.Errorf("View should render the game, got %q", m.View())
	}
}
