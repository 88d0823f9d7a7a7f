package arena

import "github.com/vovakirdan/blockarena/internal/core"

// Direction is one of the four axis-aligned headings.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directions in the order keys are read each frame.
var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vec returns the unit vector of the heading (y grows downwards).
func (d Direction) Vec() core.Vec2 {
	switch d {
	case DirUp:
		return core.Vec2{Y: -1}
	case DirDown:
		return core.Vec2{Y: 1}
	case DirLeft:
		return core.Vec2{X: -1}
	default:
		return core.Vec2{X: 1}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// moveAction and shootAction map a heading to its input action.
func moveAction(d Direction) core.Action {
	return [...]core.Action{core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight}[d]
}

func shootAction(d Direction) core.Action {
	return [...]core.Action{core.ActionShootUp, core.ActionShootDown, core.ActionShootLeft, core.ActionShootRight}[d]
}

// Body is the state shared by every entity.
type Body struct {
	X, Y   float64
	Speed  float64
	Size   float64
	Color  core.RGB
	Health int
	alive  bool
}

func newBody(x, y, speed, size float64, color core.RGB, health int) Body {
	return Body{X: x, Y: y, Speed: speed, Size: size, Color: color, Health: health, alive: true}
}

// IsAlive reports whether the entity still takes part in the simulation.
func (b *Body) IsAlive() bool {
	return b.alive
}

// Kill marks the entity dead.
func (b *Body) Kill() {
	b.alive = false
}

// Pos returns the entity anchor point.
func (b *Body) Pos() core.Vec2 {
	return core.Vec2{X: b.X, Y: b.Y}
}

// Damage lowers health and reports whether this hit killed the entity.
// It returns true at most once per entity.
func (b *Body) Damage(n int) bool {
	if !b.alive {
		return false
	}
	b.Health -= n
	if b.Health <= 0 {
		b.Kill()
		return true
	}
	return false
}
