package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/registry"
	"github.com/vovakirdan/blockarena/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Arena      config.ArenaConfig
	Player     string        // recorded with every saved run
	HoldWindow time.Duration // see HeldKeys; zero means DefaultHoldWindow
	Embedded   bool          // B returns to a parent menu instead of quitting
}

// gameKeys lists the bindings shown in the status line.
type gameKeys struct {
	Move    key.Binding
	Shoot   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k gameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Shoot, k.Pause, k.Restart, k.Back, k.Quit}
}

func (k gameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newGameKeys(embedded bool) gameKeys {
	back := "quit"
	if embedded {
		back = "menu"
	}
	return gameKeys{
		Move:    key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd", "move")),
		Shoot:   key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "shoot")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", back)),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running Block Arena in a terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	renderer  *core.ScreenRenderer
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper
	held      *HeldKeys
	keys      gameKeys
	help      help.Model
	gameState core.GameState
	highScore int
	now       func() time.Time

	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Arena.Field.FPS
	}

	w, h := FieldSize(cfg.ScreenW, cfg.ScreenH)
	screen := core.NewScreen(w, h)
	if palette, err := opts.Arena.Colors.Palette(); err == nil {
		screen.SetPalette(palette.Text, palette.Background)
	}

	m := Model{
		game:      game,
		screen:    screen,
		renderer:  core.NewScreenRenderer(screen, opts.Arena.Field.Width, opts.Arena.Field.Height),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(opts.HoldWindow),
		keys:      newGameKeys(opts.Embedded),
		help:      help.New(),
		now:       time.Now,
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.highScore = best
		}
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		// Let the game record the quit so the run is saved with its outcome.
		if !m.gameState.GameOver {
			m.gameState = m.game.Step(core.NewInputFrame(core.ActionQuit)).State
			m.recordRun()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if !m.opts.Embedded {
			m.quitting = true
			return m, tea.Quit
		}
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil
	}

	m.held.Press(action, m.now())
	return m, nil
}

// handleResize processes window resize events. The arena keeps running; only
// the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	w, h := FieldSize(msg.Width, msg.Height)
	m.screen.Resize(w, h)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.held.Frame(m.now()))
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordRun()
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run once per game over.
func (m *Model) recordRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.gameState.Score > m.highScore {
		m.highScore = m.gameState.Score
	}
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Outcome:    m.gameState.Outcome.String(),
		Score:      m.gameState.Score,
		DurationMs: m.gameState.ElapsedMillis,
		Seed:       m.config.Seed,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.renderer)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".blockarena", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.renderer)

	status := fmt.Sprintf("%s  best %d  ", m.game.Title(), m.highScore)
	m.help.Width = max(0, m.screen.Width()-lipgloss.Width(status))
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status) + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
