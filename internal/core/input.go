package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionFire           // Space - fire a laser
	ActionStart          // Enter - leave the main menu
	ActionUp             // W, Up arrow - menu navigation
	ActionDown           // S, Down arrow - menu navigation
	ActionBack           // B, Escape - go back to menu
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Pressed holds edge triggers (released -> pressed on this tick);
// Held holds every action whose key is currently down.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as just pressed. A just-pressed key is also held.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without an edge trigger.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.Held[a] = true
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}

// Has returns true if the action was just pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Default timings for KeyTracker. Terminals deliver auto-repeat presses
// roughly every 30-50ms after an initial delay of up to ~600ms.
const (
	DefaultHoldWindow   = 120 * time.Millisecond
	DefaultRepeatWindow = 600 * time.Millisecond
)

// KeyTracker reconstructs held and just-pressed key state from a stream of
// terminal key events, which carry no release information.
//
// A key stays held for HoldWindow after its most recent event. Events closer
// together than HoldWindow are auto-repeat and never trigger. An event after a
// longer gap is a new press, except that the first auto-repeat of a held key
// looks the same as a quick second tap. Such an event, arriving within
// RepeatWindow of a lone press, stays tentative: it becomes an edge once
// HoldWindow passes without another event, and is dropped if the fast
// auto-repeat stream follows.
type KeyTracker struct {
	HoldWindow   time.Duration
	RepeatWindow time.Duration

	keys    map[Action]*keyState
	pending map[Action]bool
}

type keyState struct {
	last      time.Time
	repeating bool // fast auto-repeat seen since the last press
	tentative time.Time
}

// NewKeyTracker creates a tracker with the default windows.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		HoldWindow:   DefaultHoldWindow,
		RepeatWindow: DefaultRepeatWindow,
		keys:         make(map[Action]*keyState),
		pending:      make(map[Action]bool),
	}
}

// Press records a key event for the action at time now.
func (k *KeyTracker) Press(a Action, now time.Time) {
	st, seen := k.keys[a]
	if !seen {
		k.keys[a] = &keyState{last: now}
		k.pending[a] = true
		return
	}

	k.confirm(a, st, now)

	gap := now.Sub(st.last)
	switch {
	case gap <= k.HoldWindow:
		st.repeating = true
		st.tentative = time.Time{}
	case gap > k.RepeatWindow || st.repeating:
		k.pending[a] = true
		st.repeating = false
	default:
		st.tentative = now
	}
	st.last = now
}

// confirm promotes a tentative press to an edge once HoldWindow has passed
// without another event.
func (k *KeyTracker) confirm(a Action, st *keyState, now time.Time) {
	if !st.tentative.IsZero() && now.Sub(st.tentative) > k.HoldWindow {
		k.pending[a] = true
		st.tentative = time.Time{}
	}
}

// Release forgets the action immediately (used when focus is lost).
func (k *KeyTracker) Release(a Action) {
	delete(k.keys, a)
	delete(k.pending, a)
}

// Frame builds the input frame for a tick at time now and consumes pending edges.
func (k *KeyTracker) Frame(now time.Time) InputFrame {
	f := NewInputFrame()

	for a, st := range k.keys {
		k.confirm(a, st, now)
		since := now.Sub(st.last)
		if since <= k.HoldWindow {
			f.Hold(a)
		} else if since > k.RepeatWindow {
			delete(k.keys, a)
		}
	}

	for a := range k.pending {
		f.Set(a)
	}
	clear(k.pending)

	return f
}

// Reset drops all tracked state.
func (k *KeyTracker) Reset() {
	clear(k.keys)
	clear(k.pending)
}
