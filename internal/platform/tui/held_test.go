package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockarena/internal/core"
)

func TestHeldKeysContinuousWithinWindow(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionMoveLeft, t0)

	assert.True(t, h.Frame(t0).Has(core.ActionMoveLeft))
	assert.True(t, h.Frame(t0.Add(99*time.Millisecond)).Has(core.ActionMoveLeft))
	assert.False(t, h.Frame(t0.Add(100*time.Millisecond)).Has(core.ActionMoveLeft))
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionShootUp, t0)
	h.Press(core.ActionShootUp, t0.Add(80*time.Millisecond))

	assert.True(t, h.Frame(t0.Add(150*time.Millisecond)).Has(core.ActionShootUp))
}

func TestHeldKeysPulseFiresOnce(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionPause, t0)

	assert.True(t, h.Frame(t0).Has(core.ActionPause))
	assert.False(t, h.Frame(t0).Has(core.ActionPause))
}

func TestHeldKeysCombinesActions(t *testing.T) {
	h := NewHeldKeys(DefaultHoldWindow)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionMoveUp, t0)
	h.Press(core.ActionShootRight, t0)
	h.Press(core.ActionRestart, t0)
	h.Press(core.ActionNone, t0)

	f := h.Frame(t0.Add(10 * time.Millisecond))
	assert.True(t, f.Has(core.ActionMoveUp))
	assert.True(t, f.Has(core.ActionShootRight))
	assert.True(t, f.Has(core.ActionRestart))
	assert.False(t, f.Has(core.ActionNone))
}

func TestHeldKeysReset(t *testing.T) {
	h := NewHeldKeys(DefaultHoldWindow)
	t0 := time.Unix(0, 0)
	h.Press(core.ActionMoveDown, t0)
	h.Press(core.ActionPause, t0)

	h.Reset()

	f := h.Frame(t0)
	assert.False(t, f.Has(core.ActionMoveDown))
	assert.False(t, f.Has(core.ActionPause))
}
