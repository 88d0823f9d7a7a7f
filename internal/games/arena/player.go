package arena

import (
	"github.com/vovakirdan/blockarena/internal/config"
	"github.com/vovakirdan/blockarena/internal/core"
)

// Player is the square avatar controlled by the user.
type Player struct {
	Body
	LastDir   Direction
	MaxHealth int

	fieldW, fieldH float64
	pushBack       float64
	keepFacing     bool

	shotCooldown int64
	lastShot     [len(directions)]int64

	// Contact invulnerability, only used when the ruleset sets a cooldown.
	invulnerableUntil int64
}

func newPlayer(cfg config.ArenaConfig, color core.RGB, now int64) *Player {
	p := &Player{
		Body:         newBody(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.Speed, cfg.Player.Size, color, cfg.Player.Health),
		LastDir:      DirRight,
		MaxHealth:    cfg.Player.Health,
		fieldW:       cfg.Field.Width,
		fieldH:       cfg.Field.Height,
		pushBack:     cfg.Player.PushBack,
		keepFacing:   cfg.Rules.IdleFacing == config.IdleFacingKeep,
		shotCooldown: cfg.Player.ShotCooldownMs,
	}
	for i := range p.lastShot {
		p.lastShot[i] = now - p.shotCooldown
	}
	return p
}

// Move applies held movement keys and clamps the avatar to the field.
// Keys are read up, down, left, right; the last one held sets LastDir.
func (p *Player) Move(in core.InputFrame) {
	if !p.alive {
		return
	}

	moved := false
	for _, d := range directions {
		if !in.Has(moveAction(d)) {
			continue
		}
		v := d.Vec()
		p.X += v.X * p.Speed
		p.Y += v.Y * p.Speed
		p.LastDir = d
		moved = true
	}
	p.clamp()

	if !moved && !p.keepFacing {
		p.LastDir = DirRight
	}
}

// PushBack shifts the avatar away from its facing direction.
func (p *Player) PushBack() {
	v := p.LastDir.Opposite().Vec()
	p.X += v.X * p.pushBack
	p.Y += v.Y * p.pushBack
	p.clamp()
}

func (p *Player) clamp() {
	p.X = core.ClampF(p.X, 0, p.fieldW-p.Size)
	p.Y = core.ClampF(p.Y, 0, p.fieldH-p.Size)
}

// Hitbox returns the avatar's square bounds.
func (p *Player) Hitbox() core.AABB {
	return core.NewAABB(p.X, p.Y, p.Size, p.Size)
}

// TryShoot reports whether a shot in direction d is allowed at now and, if
// so, restarts that direction's cooldown.
func (p *Player) TryShoot(d Direction, now int64) bool {
	if now-p.lastShot[d] < p.shotCooldown {
		return false
	}
	p.lastShot[d] = now
	return true
}

// Contact applies body-contact damage and push-back. With a positive
// cooldown, contacts inside the invulnerability window are ignored.
func (p *Player) Contact(now int64, damage int, cooldown int64) bool {
	if cooldown > 0 && now < p.invulnerableUntil {
		return false
	}
	p.Health -= damage
	p.PushBack()
	if cooldown > 0 {
		p.invulnerableUntil = now + cooldown
	}
	return true
}
