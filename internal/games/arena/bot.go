package arena

import (
	"math"

	"github.com/vovakirdan/blockarena/internal/core"
)

// Bot is an InputSource that plays a session on its own. It locks onto the
// nearest hostile and keeps shooting it until it dies, backing away from any
// hostile that gets close and otherwise lining up with the locked target.
type Bot struct {
	g          *Game
	fleeRadius float64
	deadZone   float64
	target     botTarget
}

type hostileKind uint8

const (
	kindNone hostileKind = iota
	kindEnemy
	kindTriangle
	kindRect
)

// botTarget names a hostile by pool and id so the lock survives Reclaim.
type botTarget struct {
	kind hostileKind
	id   EntityID
}

// NewBot creates a bot driving g.
func NewBot(g *Game) *Bot {
	return &Bot{g: g, fleeRadius: 90, deadZone: 2}
}

// Poll implements core.InputSource.
func (b *Bot) Poll() core.InputFrame {
	in := core.NewInputFrame()
	g := b.g
	if g.player == nil || g.over {
		b.target = botTarget{}
		return in
	}

	half := g.player.Size / 2
	origin := g.player.Pos().Add(core.Vec2{X: half, Y: half})

	threat, threatAt, ok := b.nearest(origin)
	if !ok {
		b.target = botTarget{}
		return in
	}
	target, locked := b.locate(b.target)
	if !locked {
		b.target = threat
		target = threatAt
	}

	d := target.Sub(origin)
	horizontal := math.Abs(d.X) >= math.Abs(d.Y)
	switch {
	case horizontal && d.X >= 0:
		in.Set(core.ActionShootRight)
	case horizontal:
		in.Set(core.ActionShootLeft)
	case d.Y >= 0:
		in.Set(core.ActionShootDown)
	default:
		in.Set(core.ActionShootUp)
	}

	if away := threatAt.Sub(origin); away.Len() < b.fleeRadius {
		b.away(&in, away)
		return in
	}

	// Line up on the minor axis so shots connect.
	if horizontal {
		b.toward(&in, core.Vec2{Y: d.Y})
	} else {
		b.toward(&in, core.Vec2{X: d.X})
	}
	return in
}

func (b *Bot) toward(in *core.InputFrame, d core.Vec2) {
	if d.X > b.deadZone {
		in.Set(core.ActionMoveRight)
	} else if d.X < -b.deadZone {
		in.Set(core.ActionMoveLeft)
	}
	if d.Y > b.deadZone {
		in.Set(core.ActionMoveDown)
	} else if d.Y < -b.deadZone {
		in.Set(core.ActionMoveUp)
	}
}

func (b *Bot) away(in *core.InputFrame, d core.Vec2) {
	b.toward(in, d.Scale(-1))
}

// locate returns the aim point of t while it is still alive.
func (b *Bot) locate(t botTarget) (core.Vec2, bool) {
	switch t.kind {
	case kindEnemy:
		if e, ok := b.g.enemies.Get(t.id); ok && e.IsAlive() {
			return enemyAim(e), true
		}
	case kindTriangle:
		if tri, ok := b.g.triangles.Get(t.id); ok && tri.IsAlive() {
			return tri.Pos(), true
		}
	case kindRect:
		if r, ok := b.g.rects.Get(t.id); ok && r.IsAlive() {
			return r.Center(), true
		}
	}
	return core.Vec2{}, false
}

// nearest returns the closest alive hostile and its aim point.
func (b *Bot) nearest(from core.Vec2) (botTarget, core.Vec2, bool) {
	var (
		best   botTarget
		bestAt core.Vec2
	)
	bestDist := math.Inf(1)
	consider := func(kind hostileKind, id EntityID, c core.Vec2) {
		if dist := c.Sub(from).Len(); dist < bestDist {
			best, bestAt, bestDist = botTarget{kind, id}, c, dist
		}
	}

	b.g.enemies.Each(func(id EntityID, e *Enemy) bool {
		consider(kindEnemy, id, enemyAim(e))
		return true
	})
	b.g.triangles.Each(func(id EntityID, t *Triangle) bool {
		consider(kindTriangle, id, t.Pos())
		return true
	})
	b.g.rects.Each(func(id EntityID, r *Rect) bool {
		consider(kindRect, id, r.Center())
		return true
	})
	return best, bestAt, !math.IsInf(bestDist, 1)
}

// enemyAim is the midpoint of the line between its anchor and tip.
func enemyAim(e *Enemy) core.Vec2 {
	return e.Pos().Add(e.Tip()).Scale(0.5)
}
