package tui

import (
	"time"

	"github.com/vovakirdan/blockarena/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press or
// auto-repeat event.
const DefaultHoldWindow = 250 * time.Millisecond

// HeldKeys approximates keyboard state from press events. Terminals report
// presses and auto-repeats but never releases, so continuous actions (move,
// shoot) stay held until no event arrived for the hold window. Discrete
// actions (pause, restart, quit) fire on exactly one frame.
type HeldKeys struct {
	hold     time.Duration
	lastSeen map[core.Action]time.Time
	pulses   core.InputFrame
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &HeldKeys{
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time),
		pulses:   core.NewInputFrame(),
	}
}

// continuous reports whether a stays active while its key is held.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight,
		core.ActionShootUp, core.ActionShootDown, core.ActionShootLeft, core.ActionShootRight:
		return true
	default:
		return false
	}
}

// Press records a key event for a at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if continuous(a) {
		h.lastSeen[a] = now
		return
	}
	h.pulses.Set(a)
}

// Frame returns the actions active at now and consumes pending pulses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.pulses.Clone()
	h.pulses.Clear()

	for a, seen := range h.lastSeen {
		if now.Sub(seen) < h.hold {
			frame.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return frame
}

// Reset forgets every held key and pending pulse.
func (h *HeldKeys) Reset() {
	clear(h.lastSeen)
	h.pulses.Clear()
}
