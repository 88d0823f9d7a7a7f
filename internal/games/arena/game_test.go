package arena

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
	"github.com/vovakirdan/blockarena/internal/registry"
)

// newTestGame returns a classic session on a manual clock at t=0.
func newTestGame(t *testing.T, g *Game) (*Game, *core.ManualClock) {
	t.Helper()
	clk := &core.ManualClock{}
	g.Configure(config.DefaultArenaConfig())
	g.UseClock(clk)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 42})
	return g, clk
}

// emptyArena removes the starting hostiles.
func emptyArena(g *Game) {
	g.enemies.Clear()
	g.triangles.Clear()
	g.rects.Clear()
	g.bullets = nil
}

func mustEnemy(t *testing.T, g *Game, id EntityID) *Enemy {
	t.Helper()
	e, ok := g.enemies.Get(id)
	require.True(t, ok)
	return e
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDFair} {
		require.True(t, registry.Exists(id))
		g, err := registry.CreateConfigured(id, config.DefaultArenaConfig())
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestResetInitialPopulation(t *testing.T) {
	g, _ := newTestGame(t, New())

	assert.Equal(t, 250.0, g.player.X)
	assert.Equal(t, 250.0, g.player.Y)
	assert.Equal(t, 3, g.player.Health)
	assert.Equal(t, 1, g.enemies.AliveCount())
	assert.Equal(t, 1, g.triangles.AliveCount())
	assert.Equal(t, 1, g.rects.AliveCount())
	assert.Equal(t, config.ClassicRules(), g.Config().Rules)

	fair, _ := newTestGame(t, NewFair())
	assert.Equal(t, config.FairRules(), fair.Config().Rules)
}

func TestBulletKillsOneHealthEnemy(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)

	id := g.spawnEnemy(400, 400)
	mustEnemy(t, g, id).Health = 1
	g.triangles.Spawn(newTestTriangle(100, 0))
	g.bullets = []Bullet{
		{X: 380, Y: 380, Speed: 5, Size: 5, Dir: DirRight},
		{X: 10, Y: 10, Speed: 5, Size: 5, Dir: DirDown},
	}

	res := g.Step(core.NewInputFrame())

	assert.Equal(t, 1, g.score)
	assert.Equal(t, 0, g.enemies.AliveCount())
	assert.Equal(t, 0, g.enemies.Len(), "dead enemy reclaimed at end of frame")
	require.Len(t, g.bullets, 1, "only the hitting bullet is removed")
	assert.Equal(t, 15.0, g.bullets[0].Y)
	assert.False(t, res.State.GameOver, "triangle still alive")
	assert.Equal(t, 1, countEvents(res.Events, core.EventEnemyKilled))
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestBulletHitWithoutKill(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)

	id := g.spawnEnemy(400, 400)
	g.bullets = []Bullet{{X: 380, Y: 380, Speed: 5, Size: 5, Dir: DirRight}}
	g.Step(core.NewInputFrame())

	assert.Equal(t, 2, mustEnemy(t, g, id).Health)
	assert.Equal(t, 0, g.score)
	assert.Empty(t, g.bullets)
}

func TestResetClockSelection(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	assert.IsType(t, &core.FrameClock{}, g.clock)

	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1, RealTime: true})
	assert.IsType(t, &core.WallClock{}, g.clock)

	clk := &core.ManualClock{}
	g.UseClock(clk)
	g.Reset(core.RuntimeConfig{Seed: 1, RealTime: true})
	assert.Same(t, clk, g.clock)
}

func TestResetRulesFollowRuleset(t *testing.T) {
	tuned := config.ClassicRules()
	tuned.MaxEnemies = 5
	tunedFair := config.FairRules()
	tunedFair.ContactCooldownMs = 900

	tests := []struct {
		name  string
		game  *Game
		rules config.RulesConfig
		want  config.RulesConfig
	}{
		{"classic ignores fair rules", New(), config.FairRules(), config.ClassicRules()},
		{"classic keeps tuned classic rules", New(), tuned, tuned},
		{"fair ignores classic rules", NewFair(), tuned, config.FairRules()},
		{"fair keeps tuned fair rules", NewFair(), tunedFair, tunedFair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultArenaConfig()
			cfg.Rules = tt.rules
			tt.game.Configure(cfg)
			tt.game.UseClock(&core.ManualClock{})
			tt.game.Reset(core.RuntimeConfig{Seed: 1})
			assert.Equal(t, tt.want, tt.game.Config().Rules)
		})
	}
}

func TestEnemyContactPushesPlayerBack(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)
	g.spawnEnemy(250, 200)

	res := g.Step(core.NewInputFrame(core.ActionMoveUp))

	assert.Equal(t, 2, g.player.Health)
	assert.Equal(t, DirUp, g.player.LastDir)
	assert.Equal(t, 250.0, g.player.X)
	assert.Equal(t, 248.0+50, g.player.Y)

	assert.Equal(t, 1, countEvents(res.Events, core.EventPlayerHit))
}

func TestSustainedContactDamage(t *testing.T) {
	tests := []struct {
		name     string
		game     *Game
		step     int64
		frames   int
		wantHits int
	}{
		{"classic hits every frame", New(), 100, 10, 10},
		{"fair hits again after cooldown", NewFair(), 100, 10, 2},
		{"fair blocks repeats inside cooldown", NewFair(), 50, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clk := newTestGame(t, tt.game)
			clk.Step = tt.step
			emptyArena(g)

			// Pinned against the left wall, push-back cannot separate them.
			g.player.X, g.player.Y = 0, 250
			g.player.Health = 100
			mustEnemy(t, g, g.spawnEnemy(5, 255)).Speed = 0

			hits := 0
			for range tt.frames {
				res := g.Step(core.NewInputFrame())
				hits += countEvents(res.Events, core.EventPlayerHit)
			}
			assert.Equal(t, tt.wantHits, hits)
			assert.Equal(t, 100-tt.wantHits, g.player.Health)
			assert.Equal(t, 0.0, g.player.X)
			assert.False(t, g.State().GameOver)
		})
	}
}

func TestTriangleBulletHurtsPlayer(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)

	tri := newTestTriangle(100, 0)
	tri.lastShot = 0
	tri.Bullets = []Bullet{{X: 245, Y: 255, Speed: 3, Size: 5, Dir: DirRight}}
	g.triangles.Spawn(tri)

	g.Step(core.NewInputFrame())
	assert.Equal(t, 2, g.player.Health)
	assert.Empty(t, tri.Bullets)
	assert.Equal(t, 250.0, g.player.X, "bullet hits do not push back")
}

func TestSpawnAtFiveSeconds(t *testing.T) {
	g, clk := newTestGame(t, New())
	emptyArena(g)
	g.spawnEnemy(0, 0)

	clk.Set(5000)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 2, g.enemies.AliveCount())
}

func TestSpawnAtFiveSecondsWithoutEnemies(t *testing.T) {
	g, clk := newTestGame(t, New())
	emptyArena(g)
	g.triangles.Spawn(newTestTriangle(100, 0))

	clk.Set(5000)
	res := g.Step(core.NewInputFrame())
	assert.Equal(t, 0, g.enemies.Len())
	assert.False(t, res.State.GameOver)
}

func TestDeathTakesPrecedenceOverWin(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)
	g.player.Health = 1

	id := g.spawnEnemy(260, 240)
	mustEnemy(t, g, id).Health = 1
	g.bullets = []Bullet{{X: 240, Y: 250, Speed: 5, Size: 5, Dir: DirRight}}

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, 1, res.State.Score)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, core.OutcomeLoss, res.State.Outcome)
}

func TestRunLoopReportsWin(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)

	e := mustEnemy(t, g, g.spawnEnemy(400, 400))
	e.Health = 1
	tri, _ := g.triangles.Get(g.spawnTriangle(100, 300))
	tri.Health = 1
	rc, _ := g.rects.Get(g.spawnRect(200, 100))
	rc.Health = 1
	g.bullets = []Bullet{
		{X: 380, Y: 380, Speed: 5, Size: 5, Dir: DirRight},
		{X: 95, Y: 300, Speed: 5, Size: 5, Dir: DirRight},
		{X: 220, Y: 105, Speed: 5, Size: 5, Dir: DirRight},
	}

	res, err := core.RunLoop(context.Background(), g, core.NewScriptedInput(), nil, core.NoPacer{}, core.LoopOptions{MaxFrames: 10})
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeWin, res.Outcome)
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, 1, res.Frames)
}

func TestEmptyArenaIsWin(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, core.OutcomeWin, res.State.Outcome)
	assert.Equal(t, 0, res.State.Score)
}

func TestQuitPauseRestart(t *testing.T) {
	g, clk := newTestGame(t, New())
	clk.Step = 16

	g.Step(core.NewInputFrame(core.ActionPause))
	assert.True(t, g.State().Paused)
	tick := g.tick
	g.Step(core.NewInputFrame())
	assert.Equal(t, tick, g.tick, "paused sessions do not advance")

	g.Step(core.NewInputFrame(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Equal(t, tick+1, g.tick)

	g.score = 4
	res := g.Step(core.NewInputFrame(core.ActionQuit))
	assert.Equal(t, core.OutcomeQuit, res.State.Outcome)
	assert.Equal(t, 4, res.State.Score)

	// Game over ignores everything except restart.
	g.Step(core.NewInputFrame(core.ActionMoveLeft))
	assert.True(t, g.State().GameOver)

	res = g.Step(core.NewInputFrame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 1, g.enemies.AliveCount())
}

func TestPlayerShootingCooldown(t *testing.T) {
	g, clk := newTestGame(t, New())
	emptyArena(g)
	g.triangles.Spawn(newTestTriangle(100, 0))
	clk.Step = 100

	shoot := core.NewInputFrame(core.ActionShootUp, core.ActionShootLeft)
	for range 5 {
		g.Step(shoot)
	}
	// t=0 fires both; t=100..400 are inside the 500ms cooldown.
	assert.Len(t, g.bullets, 2)

	g.Step(shoot)
	assert.Len(t, g.bullets, 4)
}

func TestRenderIsPureRead(t *testing.T) {
	g, _ := newTestGame(t, New())
	g.Step(core.NewInputFrame(core.ActionShootRight))

	before := g.Snapshot()
	rec := &recordingRenderer{}
	g.Render(rec)
	assert.Equal(t, before, g.Snapshot())

	require.NotEmpty(t, rec.calls)
	assert.Equal(t, "clear", rec.calls[0])
	assert.Equal(t, "present", rec.calls[len(rec.calls)-1])
	assert.Contains(t, rec.calls, "line")
	assert.Contains(t, rec.calls, "polygon")
	assert.Contains(t, rec.texts, "Time: 0s")
}

func TestRenderOnScreen(t *testing.T) {
	g, _ := newTestGame(t, New())
	screen := core.NewScreen(50, 50)
	r := core.NewScreenRenderer(screen, 500, 500)
	g.Render(r)

	// Player occupies world (250,250)-(275,275), cells (25,25)-(27,27).
	assert.Equal(t, core.FillRune, screen.Get(25, 25))
	assert.Equal(t, 1, r.Frames())
}

func TestHealthBarWidth(t *testing.T) {
	g, _ := newTestGame(t, New())
	assert.Equal(t, 100.0, g.healthBarWidth())
	g.player.Health = 2
	assert.Equal(t, 66.0, g.healthBarWidth())
	g.player.Health = -1
	assert.Equal(t, 0.0, g.healthBarWidth())
}

func TestSnapshot(t *testing.T) {
	g, _ := newTestGame(t, New())
	s := g.Snapshot()

	assert.Equal(t, IDClassic, s.Ruleset)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "none", s.Outcome)
	assert.Equal(t, PlayerSnapshot{X: 250, Y: 250, Health: 3, Facing: "right"}, s.Player)
	assert.Equal(t, 1, s.Enemies)
	assert.Equal(t, map[string]int{"cruising": 1}, s.RectStates)
}

func TestBotDeterministic(t *testing.T) {
	run := func() Snapshot {
		g, clk := newTestGame(t, New())
		clk.Step = 17
		_, err := core.RunLoop(context.Background(), g, NewBot(g), nil, nil, core.LoopOptions{MaxFrames: 900})
		require.NoError(t, err)
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestBotAimsAtNearestHostile(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)
	g.spawnRect(450, 250)

	in := NewBot(g).Poll()
	assert.True(t, in.Has(core.ActionShootRight))
	assert.False(t, in.Has(core.ActionShootLeft))

	emptyArena(g)
	g.spawnRect(200, 260)
	in = NewBot(g).Poll()
	assert.True(t, in.Has(core.ActionMoveRight), "backs away from a close hostile")
}

func TestBotLinesUpFromAvatarCentre(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)
	// The avatar centre is (262.5, 262.5); the row at 257 sits just above it.
	g.spawnTriangle(450, 257)

	in := NewBot(g).Poll()
	assert.True(t, in.Has(core.ActionShootRight))
	assert.True(t, in.Has(core.ActionMoveUp))
	assert.False(t, in.Has(core.ActionMoveDown))
}

func TestBotKeepsTargetUntilItDies(t *testing.T) {
	g, _ := newTestGame(t, New())
	emptyArena(g)
	bot := NewBot(g)

	far := g.spawnTriangle(450, 262)
	in := bot.Poll()
	assert.Equal(t, botTarget{kindTriangle, far}, bot.target)
	assert.True(t, in.Has(core.ActionShootRight))

	// A closer hostile does not steal the lock.
	near := g.spawnTriangle(262, 420)
	in = bot.Poll()
	assert.Equal(t, botTarget{kindTriangle, far}, bot.target)
	assert.True(t, in.Has(core.ActionShootRight))
	assert.False(t, in.Has(core.ActionShootDown))

	tri, ok := g.triangles.Get(far)
	require.True(t, ok)
	tri.Kill()
	in = bot.Poll()
	assert.Equal(t, botTarget{kindTriangle, near}, bot.target)
	assert.True(t, in.Has(core.ActionShootDown))

	// The lock survives compaction of the pool.
	g.triangles.Reclaim()
	bot.Poll()
	assert.Equal(t, botTarget{kindTriangle, near}, bot.target)

	emptyArena(g)
	bot.Poll()
	assert.Equal(t, botTarget{}, bot.target)
}

type recordingRenderer struct {
	calls []string
	texts []string
}

func (r *recordingRenderer) Clear()                              { r.calls = append(r.calls, "clear") }
func (r *recordingRenderer) DrawRect(_, _ core.Vec2, _ core.RGB) { r.calls = append(r.calls, "rect") }
func (r *recordingRenderer) DrawPolygon(_ []core.Vec2, _ core.RGB) {
	r.calls = append(r.calls, "polygon")
}
func (r *recordingRenderer) Present() { r.calls = append(r.calls, "present") }

func (r *recordingRenderer) DrawLine(_, _ core.Vec2, _ core.RGB, _ float64) {
	r.calls = append(r.calls, "line")
}

func (r *recordingRenderer) DrawText(text string, _ core.Vec2, _ core.RGB) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, text)
}
