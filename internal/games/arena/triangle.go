package arena

import "github.com/vovakirdan/blockarena/internal/core"

// Triangle patrols vertically and fires rightward bullets.
type Triangle struct {
	Body
	Bullets []Bullet

	fieldH      float64
	cooldown    int64
	lastShot    int64
	bulletSpeed float64
	bulletSize  float64
	bulletColor core.RGB
}

// Move patrols along y, reversing when it touches a bound it is heading
// toward.
func (t *Triangle) Move() {
	if !t.alive {
		return
	}
	t.Y += t.Speed
	if (t.Speed < 0 && t.Y-t.Size <= 0) || (t.Speed > 0 && t.Y+t.Size >= t.fieldH) {
		t.Speed = -t.Speed
	}
}

// Shoot fires one bullet when the cooldown has elapsed.
func (t *Triangle) Shoot(now int64) bool {
	if !t.alive || now-t.lastShot < t.cooldown {
		return false
	}
	t.Bullets = append(t.Bullets, Bullet{
		X:     t.X,
		Y:     t.Y,
		Speed: t.bulletSpeed,
		Size:  t.bulletSize,
		Dir:   DirRight,
		Color: t.bulletColor,
	})
	t.lastShot = now
	return true
}

// UpdateBullets moves the triangle's bullets and drops those that left the
// field.
func (t *Triangle) UpdateBullets(fieldW, fieldH float64) {
	t.Bullets = filterBullets(t.Bullets, func(b *Bullet) bool {
		b.Move()
		return b.InField(fieldW, fieldH)
	})
}

// Hitbox returns the square of side 2*Size centred on the position.
func (t *Triangle) Hitbox() core.AABB {
	return core.NewAABB(t.X-t.Size, t.Y-t.Size, 2*t.Size, 2*t.Size)
}

// Points returns the polygon, pointing right.
func (t *Triangle) Points() []core.Vec2 {
	return []core.Vec2{
		{X: t.X + t.Size, Y: t.Y},
		{X: t.X - t.Size, Y: t.Y - t.Size},
		{X: t.X - t.Size, Y: t.Y + t.Size},
	}
}
