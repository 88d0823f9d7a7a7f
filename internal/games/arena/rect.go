package arena

import "github.com/vovakirdan/blockarena/internal/core"

// RectState is the phase of a Rect's charge cycle.
type RectState int

const (
	RectCruising RectState = iota // sliding along x at cruise speed
	RectStopped                   // waiting out the charge delay
	RectCharging                  // rushing along ChargeDir
)

// String returns the state name.
func (s RectState) String() string {
	switch s {
	case RectCruising:
		return "cruising"
	case RectStopped:
		return "stopped"
	case RectCharging:
		return "charging"
	default:
		return "unknown"
	}
}

// Rect is a wide block that cruises, stops at a wall, then charges the player.
type Rect struct {
	Body
	W         float64
	State     RectState
	ChargeDir core.Vec2

	fieldW, fieldH float64
	chargeSpeed    float64
	chargeCooldown int64
	chargeDelay    int64
	lastCharge     int64
	stopTime       int64
}

// Move advances the state machine one frame.
func (r *Rect) Move(now int64, target core.Vec2) {
	if !r.alive {
		return
	}
	switch r.State {
	case RectCruising:
		r.X += r.Speed
		if r.X <= 0 || r.X+r.W >= r.fieldW {
			r.stop(now)
		}
		// Refreshes the heading only; cruising never starts a charge.
		if now-r.lastCharge >= r.chargeCooldown {
			r.face(target)
		}
	case RectStopped:
		if now-r.stopTime >= r.chargeDelay {
			r.face(target)
			r.charge(now)
		}
	case RectCharging:
		r.X += r.ChargeDir.X * r.Speed
		r.Y += r.ChargeDir.Y * r.Speed
		if r.touchesEdge() {
			r.stop(now)
		}
	}
}

func (r *Rect) touchesEdge() bool {
	return r.X <= 0 || r.X+r.W >= r.fieldW || r.Y <= 0 || r.Y+r.Size >= r.fieldH
}

func (r *Rect) stop(now int64) {
	r.State = RectStopped
	r.Speed = 0
	r.stopTime = now
}

func (r *Rect) charge(now int64) {
	r.State = RectCharging
	r.Speed = r.chargeSpeed
	r.lastCharge = now
}

func (r *Rect) face(target core.Vec2) {
	r.ChargeDir = target.Sub(r.Pos()).Normalize()
}

// Hitbox returns the block bounds.
func (r *Rect) Hitbox() core.AABB {
	return core.NewAABB(r.X, r.Y, r.W, r.Size)
}

// Center returns the middle of the block.
func (r *Rect) Center() core.Vec2 {
	return core.Vec2{X: r.X + r.W/2, Y: r.Y + r.Size/2}
}
