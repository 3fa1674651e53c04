package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := map[string]struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		"up":    {tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		"k":     {runeKey("k"), MenuActionUp},
		"down":  {tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		"s":     {runeKey("s"), MenuActionDown},
		"enter": {tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		"tab":   {tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		"esc":   {tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		"q":     {runeKey("q"), MenuActionQuit},
		"x":     {runeKey("x"), MenuActionNone},
	}

	for name, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: MapKeyToMenuAction = %v, expected %v", name, got, tt.want)
		}
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	km := DefaultGameKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp should list all 8 bindings, got %d", total)
	}
}
