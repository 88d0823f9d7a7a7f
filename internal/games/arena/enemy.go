package arena

import (
	"math"

	"github.com/vovakirdan/blockarena/internal/core"
)

// Enemy is a line segment that homes in on the player.
type Enemy struct {
	Body
	// Angle is the facing in radians, updated after each move.
	Angle     float64
	LineWidth float64
}

// Move steps toward target and turns to face it. A coincident target leaves
// the position and facing unchanged.
func (e *Enemy) Move(target core.Vec2) {
	if !e.alive {
		return
	}
	dir := target.Sub(e.Pos()).Normalize()
	e.X += dir.X * e.Speed
	e.Y += dir.Y * e.Speed

	if d := target.Sub(e.Pos()); d.X != 0 || d.Y != 0 {
		e.Angle = math.Atan2(d.Y, d.X)
	}
}

// Tip returns the far end of the segment.
func (e *Enemy) Tip() core.Vec2 {
	return core.Vec2{
		X: e.X + e.Size*math.Cos(e.Angle),
		Y: e.Y + e.Size*math.Sin(e.Angle),
	}
}

// Hitbox returns the bounds of the stroked segment.
func (e *Enemy) Hitbox() core.AABB {
	tip := e.Tip()
	return core.SegmentBounds(e.X, e.Y, tip.X, tip.Y, e.LineWidth)
}
