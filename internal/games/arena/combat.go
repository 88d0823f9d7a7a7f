package arena

import "github.com/vovakirdan/blockarena/internal/core"

// contact applies body-contact damage when box overlaps the player.
func (g *Game) contact(box core.AABB, entity string) {
	if !box.Intersects(g.player.Hitbox()) {
		return
	}
	now := g.clock.NowMillis()
	if g.player.Contact(now, g.cfg.Combat.ContactDamage, g.cfg.Rules.ContactCooldownMs) {
		g.emit(core.EventPlayerHit, entity, g.player.X, g.player.Y)
	}
}

func (g *Game) updateEnemies() {
	g.enemies.Each(func(_ EntityID, e *Enemy) bool {
		e.Move(g.player.Pos())
		g.contact(e.Hitbox(), "enemy")
		return true
	})
}

func (g *Game) updateTriangles(now int64) {
	g.triangles.Each(func(_ EntityID, t *Triangle) bool {
		t.Move()
		if t.Shoot(now) {
			g.emit(core.EventBulletFired, "triangle", t.X, t.Y)
		}
		t.UpdateBullets(g.cfg.Field.Width, g.cfg.Field.Height)
		g.contact(t.Hitbox(), "triangle")

		// Enemy bullets always hurt; no invulnerability window applies.
		player := g.player.Hitbox()
		t.Bullets = filterBullets(t.Bullets, func(b *Bullet) bool {
			if !b.Hitbox().Intersects(player) {
				return true
			}
			g.player.Health -= g.cfg.Combat.BulletDamage
			g.emit(core.EventPlayerHit, "triangle_bullet", b.X, b.Y)
			return false
		})
		return true
	})
}

func (g *Game) updateRects(now int64) {
	g.rects.Each(func(_ EntityID, r *Rect) bool {
		r.Move(now, g.player.Pos())
		g.contact(r.Hitbox(), "rect")
		return true
	})
}

// updatePlayerBullets moves player bullets, resolves hits against enemies,
// triangles and rects in that order (first hit wins), and drops bullets that
// hit something or left the field.
func (g *Game) updatePlayerBullets() {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	g.bullets = filterBullets(g.bullets, func(b *Bullet) bool {
		b.Move()
		if g.resolveHit(b) {
			return false
		}
		return b.InField(w, h)
	})
}

// resolveHit damages the first alive hostile overlapping b.
func (g *Game) resolveHit(b *Bullet) bool {
	box := b.Hitbox()
	hit := false

	g.enemies.Each(func(_ EntityID, e *Enemy) bool {
		if e.Hitbox().Intersects(box) {
			g.damage(&e.Body, "enemy")
			hit = true
		}
		return !hit
	})
	if hit {
		return true
	}

	g.triangles.Each(func(_ EntityID, t *Triangle) bool {
		if t.Hitbox().Intersects(box) {
			g.damage(&t.Body, "triangle")
			hit = true
		}
		return !hit
	})
	if hit {
		return true
	}

	g.rects.Each(func(_ EntityID, r *Rect) bool {
		if r.Hitbox().Intersects(box) {
			g.damage(&r.Body, "rect")
			hit = true
		}
		return !hit
	})
	return hit
}

func (g *Game) damage(b *Body, entity string) {
	if b.Damage(g.cfg.Combat.BulletDamage) {
		g.score += g.cfg.Combat.ScorePerKill
		g.emit(core.EventEnemyKilled, entity, b.X, b.Y)
		return
	}
	g.emit(core.EventEntityHit, entity, b.X, b.Y)
}
