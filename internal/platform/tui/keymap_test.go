package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockarena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w moves up", runeKey('w'), core.ActionMoveUp, false},
		{"a moves left", runeKey('a'), core.ActionMoveLeft, false},
		{"s moves down", runeKey('s'), core.ActionMoveDown, false},
		{"d moves right", runeKey('d'), core.ActionMoveRight, false},
		{"up shoots up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionShootUp, false},
		{"down shoots down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionShootDown, false},
		{"left shoots left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionShootLeft, false},
		{"right shoots right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionShootRight, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey('j')))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(runeKey('l')))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('x')))
}
