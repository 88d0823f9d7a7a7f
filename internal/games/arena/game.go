// Package arena implements Block Arena: a square avatar fighting homing
// lines, shooting triangles and charging blocks on a bounded field.
package arena

import (
	"math/rand"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/registry"
)

// Registered ruleset IDs.
const (
	IDClassic = "arena"
	IDFair    = "arena_fair"
)

// Game is one arena session: entities, timers, score, clock and RNG.
type Game struct {
	fair bool

	// Configuration
	cfg        config.ArenaConfig
	configured bool
	palette    config.Palette
	runtime    core.RuntimeConfig

	// Time and randomness
	clock      core.Clock
	fixedClock core.Clock // set by UseClock, survives restarts
	start      int64
	rng        *rand.Rand
	spawner    *Spawner

	// Entities
	player    *Player
	bullets   []Bullet
	enemies   *Pool[*Enemy]
	triangles *Pool[*Triangle]
	rects     *Pool[*Rect]

	// Session state
	score   int
	tick    uint64
	elapsed int64
	paused  bool
	over    bool
	outcome core.Outcome
	events  []core.Event
}

// New creates the classic ruleset.
func New() *Game {
	return &Game{}
}

// NewFair creates the ruleset with contact cooldown, enemy cap and stable
// idle facing.
func NewFair() *Game {
	return &Game{fair: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.fair {
		return IDFair
	}
	return IDClassic
}

func (g *Game) ruleset() string {
	if g.fair {
		return config.RulesetFair
	}
	return config.RulesetClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.fair {
		return "Block Arena (Fair)"
	}
	return "Block Arena"
}

// Configure sets the arena configuration used by the next Reset.
func (g *Game) Configure(cfg config.ArenaConfig) {
	g.cfg = cfg
	g.configured = true
}

// UseClock replaces the session clock. Must be called before Reset.
func (g *Game) UseClock(c core.Clock) {
	g.fixedClock = c
}

// Config returns the effective configuration of the current session.
func (g *Game) Config() config.ArenaConfig {
	return g.cfg
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.configured {
		g.cfg = config.DefaultArenaConfig()
		g.configured = true
	}
	if g.cfg.Rules.Name != g.ruleset() {
		g.cfg.Rules, _ = config.RulesFor(g.ruleset())
	}

	palette, err := g.cfg.Colors.Palette()
	if err != nil {
		palette, _ = config.DefaultArenaConfig().Colors.Palette()
	}
	g.palette = palette

	switch {
	case g.fixedClock != nil:
		g.clock = g.fixedClock
	case runtime.RealTime:
		g.clock = core.NewWallClock()
	default:
		tickRate := runtime.TickRate
		if tickRate <= 0 {
			tickRate = g.cfg.Field.FPS
		}
		g.clock = core.NewFrameClock(tickRate)
	}
	g.start = g.clock.NowMillis()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(g.cfg, g.rng, g.start)

	g.player = newPlayer(g.cfg, g.palette.Player, g.start)
	g.bullets = g.bullets[:0]
	if g.enemies == nil {
		g.enemies = NewPool[*Enemy](64)
		g.triangles = NewPool[*Triangle](8)
		g.rects = NewPool[*Rect](8)
	} else {
		g.enemies.Clear()
		g.triangles.Clear()
		g.rects.Clear()
	}

	for range g.cfg.Spawner.InitialEnemies {
		g.spawnEnemy(
			g.spawner.randRange(0, g.cfg.Field.Width-g.cfg.Enemy.Size),
			g.spawner.randRange(0, g.cfg.Field.Height-g.cfg.Enemy.Size),
		)
	}
	for range g.cfg.Spawner.InitialTriangles {
		g.spawnTriangle(g.cfg.Triangle.StartX, g.cfg.Triangle.StartY)
	}
	for range g.cfg.Spawner.InitialRects {
		g.spawnRect(g.cfg.Rect.StartX, g.cfg.Rect.StartY)
	}

	g.score = 0
	g.tick = 0
	g.elapsed = 0
	g.paused = false
	g.over = false
	g.outcome = core.OutcomeNone
	g.events = g.events[:0]
}

// Step advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.over {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionQuit) {
		g.finish(core.OutcomeQuit)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	now := g.clock.NowMillis()
	g.elapsed = now - g.start

	g.player.Move(in)
	g.playerShoot(in, now)
	g.spawn(now)
	g.updateEnemies()
	g.updateTriangles(now)
	g.updateRects(now)
	g.updatePlayerBullets()

	g.enemies.Reclaim()
	g.triangles.Reclaim()
	g.rects.Reclaim()

	// Death takes precedence over a simultaneous clear.
	if g.player.Health <= 0 {
		g.finish(core.OutcomeLoss)
	} else if g.hostilesAlive() == 0 {
		g.finish(core.OutcomeWin)
	}

	g.tick++
	g.clock.Tick()
	return g.result()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		GameOver:      g.over,
		Paused:        g.paused,
		Outcome:       g.outcome,
		ElapsedMillis: g.elapsed,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) finish(o core.Outcome) {
	g.over = true
	g.paused = false
	g.outcome = o
}

func (g *Game) emit(kind core.EventKind, entity string, x, y float64) {
	g.events = append(g.events, core.Event{Kind: kind, Entity: entity, X: x, Y: y})
}

// hostilesAlive counts every non-player entity still alive. An empty arena
// counts as cleared.
func (g *Game) hostilesAlive() int {
	return g.enemies.AliveCount() + g.triangles.AliveCount() + g.rects.AliveCount()
}

func (g *Game) playerShoot(in core.InputFrame, now int64) {
	for _, d := range directions {
		if !in.Has(shootAction(d)) || !g.player.TryShoot(d, now) {
			continue
		}
		g.bullets = append(g.bullets, Bullet{
			X:     g.player.X,
			Y:     g.player.Y,
			Speed: g.cfg.Bullets.PlayerSpeed,
			Size:  g.cfg.Bullets.PlayerSize,
			Dir:   d,
			Color: g.palette.PlayerBullet,
		})
		g.emit(core.EventBulletFired, "player", g.player.X, g.player.Y)
	}
}

func (g *Game) spawn(now int64) {
	plan := g.spawner.Plan(now, g.enemies.AliveCount())
	for _, p := range plan.Enemies {
		g.spawnEnemy(p.X, p.Y)
	}
	for _, y := range plan.Triangles {
		g.spawnTriangle(g.cfg.Spawner.SpawnX, y)
	}
	for _, y := range plan.Rects {
		g.spawnRect(g.cfg.Spawner.SpawnX, y)
	}
}

func (g *Game) spawnEnemy(x, y float64) EntityID {
	e := &Enemy{
		Body:      newBody(x, y, g.cfg.Enemy.Speed, g.cfg.Enemy.Size, g.palette.Enemy, g.cfg.Enemy.Health),
		LineWidth: g.cfg.Enemy.LineWidth,
	}
	g.emit(core.EventSpawned, "enemy", x, y)
	return g.enemies.Spawn(e)
}

func (g *Game) spawnTriangle(x, y float64) EntityID {
	now := g.clock.NowMillis()
	t := &Triangle{
		Body:        newBody(x, y, g.cfg.Triangle.Speed, g.cfg.Triangle.Size, g.palette.Triangle, g.cfg.Triangle.Health),
		fieldH:      g.cfg.Field.Height,
		cooldown:    g.cfg.Triangle.ShotCooldownMs,
		lastShot:    now - g.cfg.Triangle.ShotCooldownMs,
		bulletSpeed: g.cfg.Bullets.EnemySpeed,
		bulletSize:  g.cfg.Bullets.EnemySize,
		bulletColor: g.palette.TriangleBullet,
	}
	g.emit(core.EventSpawned, "triangle", x, y)
	return g.triangles.Spawn(t)
}

func (g *Game) spawnRect(x, y float64) EntityID {
	now := g.clock.NowMillis()
	r := &Rect{
		Body:           newBody(x, y, g.cfg.Rect.Speed, g.cfg.Rect.Size, g.palette.Rect, g.cfg.Rect.Health),
		W:              g.cfg.Rect.Size * g.cfg.Rect.WidthFactor,
		State:          RectCruising,
		ChargeDir:      core.Vec2{X: 1},
		fieldW:         g.cfg.Field.Width,
		fieldH:         g.cfg.Field.Height,
		chargeSpeed:    g.cfg.Rect.ChargeSpeed,
		chargeCooldown: g.cfg.Rect.ChargeCooldownMs,
		chargeDelay:    g.cfg.Rect.ChargeDelayMs,
		lastCharge:     now - g.cfg.Rect.ChargeCooldownMs,
	}
	g.emit(core.EventSpawned, "rect", x, y)
	return g.rects.Spawn(r)
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDFair, func() registry.Game {
		return NewFair()
	})
}
