package core

import "sync/atomic"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A - start moving left
	ActionRight             // Right arrow, D - start moving right
	ActionHalt              // Down, Space - stop moving
	ActionConfirm           // Enter - start game / save score
	ActionRetry             // R - play again after game over
	ActionShare             // S - share the score after game over
	ActionRanking           // Tab - toggle the ranking view
	ActionBack              // Esc - back to the start screen
	ActionVolumeUp          // +, = - louder
	ActionVolumeDown        // -, _ - quieter
	ActionQuit              // Ctrl+C - exit
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
	case ActionHalt:
		return "Halt"
	case ActionConfirm:
		return "Confirm"
	case ActionRetry:
		return "Retry"
	case ActionShare:
		return "Share"
	case ActionRanking:
		return "Ranking"
	case ActionBack:
		return "Back"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is the movement intent read by one simulation step.
// Both flags may be set at once; the step applies both deltas, which cancel.
type Intent struct {
	Left  bool
	Right bool
}

// Tracker holds the current "moving left" and "moving right" flags.
// Input callbacks set and clear the flags between frames; the simulation
// reads them once per frame through Snapshot. Last event wins per flag.
type Tracker struct {
	left  atomic.Bool
	right atomic.Bool
}

// NewTracker creates a tracker with both flags cleared.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Press sets the flag for the given direction action.
// Actions other than ActionLeft and ActionRight are ignored.
func (t *Tracker) Press(a Action) {
	t.set(a, true)
}

// Release clears the flag for the given direction action.
func (t *Tracker) Release(a Action) {
	t.set(a, false)
}

func (t *Tracker) set(a Action, v bool) {
	switch a {
	case ActionLeft:
		t.left.Store(v)
	case ActionRight:
		t.right.Store(v)
	}
}

// Reset clears both flags.
func (t *Tracker) Reset() {
	t.left.Store(false)
	t.right.Store(false)
}

// Snapshot returns the current flags.
func (t *Tracker) Snapshot() Intent {
	return Intent{
		Left:  t.left.Load(),
		Right: t.right.Load(),
	}
}
