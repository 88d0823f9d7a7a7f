package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/registry"
	"github.com/vovakirdan/blockarena/internal/storage"
)

// Options configures a window session.
type Options struct {
	Arena  config.ArenaConfig
	Player string
	Scale  float64 // window pixels per world unit, 0 means 1
	Logger *log.Logger
}

// Game adapts a registry.Game to ebiten.Game. Ebitengine calls Update at a
// fixed TPS, so each call is exactly one simulation frame.
type Game struct {
	game     registry.Game
	store    *storage.Store
	runtime  core.RuntimeConfig
	opts     Options
	keys     KeyState
	renderer *Renderer
	width    int
	height   int
	state    core.GameState
	saved    bool
}

// NewGame wraps game for Ebitengine and resets it.
func NewGame(game registry.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) *Game {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = opts.Arena.Field.FPS
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	bg := core.ColorWhite
	if palette, err := opts.Arena.Colors.Palette(); err == nil {
		bg = palette.Background
	}

	g := &Game{
		game:     game,
		store:    store,
		runtime:  runtime,
		opts:     opts,
		keys:     Keyboard{},
		renderer: NewRenderer(bg),
		width:    int(opts.Arena.Field.Width),
		height:   int(opts.Arena.Field.Height),
	}
	game.Reset(runtime)
	g.state = game.State()
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	frame := PollInput(g.keys)

	if frame.Has(core.ActionQuit) || frame.Has(core.ActionBack) {
		if !g.state.GameOver {
			g.state = g.game.Step(core.NewInputFrame(core.ActionQuit)).State
			g.recordRun()
		}
		return ebiten.Termination
	}

	res := g.game.Step(frame)
	g.state = res.State
	for _, ev := range res.Events {
		g.opts.Logger.Debug("event", "kind", ev.Kind, "entity", ev.Entity, "x", ev.X, "y", ev.Y)
	}

	if g.state.GameOver {
		g.recordRun()
	} else {
		g.saved = false
	}
	return nil
}

// recordRun saves the finished run once per game over.
func (g *Game) recordRun() {
	if g.saved {
		return
	}
	g.saved = true
	g.opts.Logger.Info("run finished", "game", g.game.ID(), "outcome", g.state.Outcome,
		"score", g.state.Score, "elapsed", time.Duration(g.state.ElapsedMillis)*time.Millisecond)
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveRun(storage.Run{
		GameID:     g.game.ID(),
		Player:     g.opts.Player,
		Outcome:    g.state.Outcome.String(),
		Score:      g.state.Score,
		DurationMs: g.state.ElapsedMillis,
		Seed:       g.runtime.Seed,
	}); err != nil {
		g.opts.Logger.Warn("could not save run", "error", err)
	}
}

// State returns the last observed game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.game.Render(g.renderer)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and plays game until the player quits.
func Run(game registry.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) error {
	g := NewGame(game, store, runtime, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(g.runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
