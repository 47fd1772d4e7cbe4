package tui

import (
	"time"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
)

// heldKeys turns the key presses a terminal reports into held directions.
// Terminals send no key-up event, only repeats while a key is held, so a
// direction is released once its repeats stop arriving. The first press
// gets a longer window that covers the terminal's repeat delay.
//
// A mouse button held on either half of the screen holds that direction
// too. A flag is only cleared when neither the keyboard nor the mouse
// holds it.
type heldKeys struct {
	tracker     *core.Tracker
	hold        time.Duration
	repeatDelay time.Duration
	lastPress   map[core.Action]time.Duration
	deadline    map[core.Action]time.Duration
	mouse       core.Action
}

func newHeldKeys(tracker *core.Tracker, cfg config.InputConfig) *heldKeys {
	return &heldKeys{
		tracker:     tracker,
		hold:        time.Duration(cfg.HoldMs) * time.Millisecond,
		repeatDelay: time.Duration(cfg.RepeatDelayMs) * time.Millisecond,
		lastPress:   make(map[core.Action]time.Duration, 2),
		deadline:    make(map[core.Action]time.Duration, 2),
	}
}

// opposite returns the other direction.
func opposite(a core.Action) core.Action {
	if a == core.ActionRight {
		return core.ActionLeft
	}
	return core.ActionRight
}

// Press records a key press of a direction at now. Pressing one direction
// releases the other, from the keyboard and the mouse alike, since the
// latest input wins.
func (h *heldKeys) Press(a core.Action, now time.Duration) {
	other := opposite(a)
	h.release(other)
	if h.mouse == other {
		h.ReleaseMouse()
	}

	window := h.repeatDelay
	if last, ok := h.lastPress[a]; ok && now-last <= h.repeatDelay {
		window = h.hold
	}
	h.lastPress[a] = now
	h.deadline[a] = now + window
	h.tracker.Press(a)
}

// PressMouse holds a direction until ReleaseMouse. Moving to the other
// half of the screen switches the direction.
func (h *heldKeys) PressMouse(a core.Action) {
	if h.mouse == a {
		return
	}
	if h.mouse != core.ActionNone {
		h.ReleaseMouse()
	}
	h.release(opposite(a))
	h.mouse = a
	h.tracker.Press(a)
}

// ReleaseMouse drops the mouse hold. A direction still held from the
// keyboard stays set.
func (h *heldKeys) ReleaseMouse() {
	a := h.mouse
	if a == core.ActionNone {
		return
	}
	h.mouse = core.ActionNone
	if _, held := h.deadline[a]; !held {
		h.tracker.Release(a)
	}
}

// Mouse returns the direction held by the mouse, or ActionNone.
func (h *heldKeys) Mouse() core.Action {
	return h.mouse
}

// Halt releases both directions, including the mouse hold.
func (h *heldKeys) Halt() {
	clear(h.lastPress)
	clear(h.deadline)
	h.mouse = core.ActionNone
	h.tracker.Reset()
}

// Expire releases key-held directions whose window has passed.
func (h *heldKeys) Expire(now time.Duration) {
	for a, d := range h.deadline {
		if now > d {
			h.release(a)
		}
	}
}

// release drops the keyboard hold of a. The flag stays set while the
// mouse holds the same direction.
func (h *heldKeys) release(a core.Action) {
	if _, ok := h.deadline[a]; !ok {
		return
	}
	delete(h.deadline, a)
	delete(h.lastPress, a)
	if h.mouse != a {
		h.tracker.Release(a)
	}
}
