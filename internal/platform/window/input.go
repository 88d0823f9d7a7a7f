package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockarena/internal/core"
)

// keyBinding maps a physical key to an action.
type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

// Held keys stay active for every frame they are down.
var heldBindings = []keyBinding{
	{ebiten.KeyW, core.ActionMoveUp},
	{ebiten.KeyS, core.ActionMoveDown},
	{ebiten.KeyA, core.ActionMoveLeft},
	{ebiten.KeyD, core.ActionMoveRight},
	{ebiten.KeyArrowUp, core.ActionShootUp},
	{ebiten.KeyArrowDown, core.ActionShootDown},
	{ebiten.KeyArrowLeft, core.ActionShootLeft},
	{ebiten.KeyArrowRight, core.ActionShootRight},
}

// Pressed keys fire once per press.
var pressBindings = []keyBinding{
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyB, core.ActionBack},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// KeyState reports keyboard state. Keyboard reads the real device.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// Keyboard is the Ebitengine keyboard.
type Keyboard struct{}

// Pressed implements KeyState.
func (Keyboard) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// JustPressed implements KeyState.
func (Keyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// PollInput builds this frame's input from ks.
func PollInput(ks KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range heldBindings {
		if ks.Pressed(b.key) {
			frame.Set(b.action)
		}
	}
	for _, b := range pressBindings {
		if ks.JustPressed(b.key) {
			frame.Set(b.action)
		}
	}
	return frame
}
