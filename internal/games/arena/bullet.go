package arena

import "github.com/vovakirdan/blockarena/internal/core"

// Bullet is a projectile flying in a fixed direction.
type Bullet struct {
	X, Y  float64
	Speed float64
	Size  float64
	Dir   Direction
	Color core.RGB
}

// Move advances the bullet one frame.
func (b *Bullet) Move() {
	v := b.Dir.Vec()
	b.X += v.X * b.Speed
	b.Y += v.Y * b.Speed
}

// Hitbox returns the bullet's square bounds.
func (b *Bullet) Hitbox() core.AABB {
	return core.NewAABB(b.X, b.Y, b.Size, b.Size)
}

// InField reports whether the bullet position lies in [0,w]x[0,h].
func (b *Bullet) InField(w, h float64) bool {
	return b.X >= 0 && b.X <= w && b.Y >= 0 && b.Y <= h
}

// filterBullets keeps the bullets for which keep returns true, reusing the
// backing array.
func filterBullets(bs []Bullet, keep func(*Bullet) bool) []Bullet {
	out := bs[:0]
	for i := range bs {
		if keep(&bs[i]) {
			out = append(out, bs[i])
		}
	}
	clear(bs[len(out):])
	return out
}
