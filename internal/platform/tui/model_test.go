package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	_ "github.com/vovakirdan/blockarena/internal/games/arena"
	"github.com/vovakirdan/blockarena/internal/registry"
	"github.com/vovakirdan/blockarena/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store, embedded bool) Model {
	t.Helper()
	arena := config.DefaultArenaConfig()
	game, err := registry.CreateConfigured("arena", arena)
	require.NoError(t, err)

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 41, TickRate: 60, Seed: 7}, Options{
		Arena:    arena,
		Player:   "tester",
		Embedded: embedded,
	})
	now := time.Unix(100, 0)
	m.now = func() time.Time { return now }
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestFieldSize(t *testing.T) {
	tests := []struct {
		termW, termH int
		w, h         int
	}{
		{80, 41, 80, 40},
		{200, 41, 80, 40},
		{60, 41, 60, 30},
		{81, 24, 46, 23},
		{1, 1, 2, 1},
	}
	for _, tt := range tests {
		w, h := FieldSize(tt.termW, tt.termH)
		assert.Equal(t, tt.w, w, "width for %dx%d", tt.termW, tt.termH)
		assert.Equal(t, tt.h, h, "height for %dx%d", tt.termW, tt.termH)
	}
}

func TestModelSizesScreenToArena(t *testing.T) {
	m := newTestModel(t, nil, false)
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 31})
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 30, m.screen.Height())
}

func TestModelTicksAdvanceGame(t *testing.T) {
	m := newTestModel(t, nil, false)

	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	assert.NotNil(t, cmd, "tick schedules the next tick")
	assert.False(t, m.State().GameOver)
	assert.Positive(t, m.State().ElapsedMillis)
}

func TestModelPauseAndBack(t *testing.T) {
	m := newTestModel(t, nil, true)

	m, _ = update(t, m, runeKey('b'))
	assert.False(t, m.BackToMenu(), "back is ignored while playing")

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	require.True(t, m.State().Paused)

	m, _ = update(t, m, runeKey('b'))
	assert.True(t, m.BackToMenu())
}

func TestModelBackQuitsStandalone(t *testing.T) {
	m := newTestModel(t, nil, false)

	m, cmd := update(t, m, runeKey('b'))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestModelQuitRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, store, false)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd := update(t, m, runeKey('q'))

	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Equal(t, core.OutcomeQuit, m.State().Outcome)
	assert.Empty(t, m.View())

	runs, err := store.RecentRuns("arena", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "quit", runs[0].Outcome)
	assert.Equal(t, "tester", runs[0].Player)
	assert.Equal(t, int64(7), runs[0].Seed)
}

func TestModelViewHasStatusLine(t *testing.T) {
	m := newTestModel(t, nil, false)
	view := m.View()
	assert.Contains(t, view, "Block Arena")
	assert.Contains(t, view, "best 0")
}
