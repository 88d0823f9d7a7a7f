package arena

import (
	"fmt"

	"github.com/vovakirdan/blockarena/internal/core"
)

// HUD layout in world units.
var (
	hudTimePos  = core.Vec2{X: 10, Y: 10}
	hudBarPos   = core.Vec2{X: 10, Y: 40}
	hudBarSize  = core.Vec2{X: 100, Y: 15}
	hudScorePos = core.Vec2{X: 10, Y: 60}
)

// Render draws the session. It only reads state.
func (g *Game) Render(r core.Renderer) {
	r.Clear()

	g.renderPlayer(r)
	g.renderHUD(r)

	g.enemies.Each(func(_ EntityID, e *Enemy) bool {
		r.DrawLine(e.Pos(), e.Tip(), e.Color, e.LineWidth)
		return true
	})
	g.triangles.Each(func(_ EntityID, t *Triangle) bool {
		r.DrawPolygon(t.Points(), t.Color)
		for i := range t.Bullets {
			drawBullet(r, &t.Bullets[i])
		}
		return true
	})
	g.rects.Each(func(_ EntityID, rc *Rect) bool {
		r.DrawRect(rc.Pos(), core.Vec2{X: rc.W, Y: rc.Size}, rc.Color)
		return true
	})
	for i := range g.bullets {
		drawBullet(r, &g.bullets[i])
	}

	g.renderOverlay(r)
	r.Present()
}

func (g *Game) renderPlayer(r core.Renderer) {
	p := g.player
	r.DrawRect(p.Pos(), core.Vec2{X: p.Size, Y: p.Size}, p.Color)
}

func (g *Game) renderHUD(r core.Renderer) {
	r.DrawText(fmt.Sprintf("Time: %ds", g.elapsed/1000), hudTimePos, g.palette.Text)

	r.DrawRect(hudBarPos, hudBarSize, g.palette.HealthBarBack)
	if w := g.healthBarWidth(); w > 0 {
		r.DrawRect(hudBarPos, core.Vec2{X: w, Y: hudBarSize.Y}, g.palette.HealthBar)
	}

	r.DrawText(fmt.Sprintf("Score: %d", g.score), hudScorePos, g.palette.Text)
}

// healthBarWidth is the green part of the bar, truncated to whole units.
func (g *Game) healthBarWidth() float64 {
	if g.player.MaxHealth <= 0 || g.player.Health <= 0 {
		return 0
	}
	return float64(int(hudBarSize.X * float64(g.player.Health) / float64(g.player.MaxHealth)))
}

func (g *Game) renderOverlay(r core.Renderer) {
	center := core.Vec2{X: g.cfg.Field.Width / 2, Y: g.cfg.Field.Height / 2}
	line := func(text string, dy float64) {
		// Text is anchored at its left edge; shift by a rough glyph width.
		pos := core.Vec2{X: center.X - float64(len(text))*3, Y: center.Y + dy}
		r.DrawText(text, pos, g.palette.Text)
	}

	switch {
	case g.paused:
		line("PAUSED", -10)
		line("P to resume", 10)
	case g.over:
		switch g.outcome {
		case core.OutcomeWin:
			line("YOU WIN!", -20)
		case core.OutcomeLoss:
			line("YOU DIED", -20)
		default:
			line("GAME OVER", -20)
		}
		line(fmt.Sprintf("Score: %d", g.score), 0)
		line("R to restart", 20)
	}
}

func drawBullet(r core.Renderer, b *Bullet) {
	r.DrawRect(core.Vec2{X: b.X, Y: b.Y}, core.Vec2{X: b.Size, Y: b.Size}, b.Color)
}
