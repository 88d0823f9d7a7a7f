package core

import "math"

// Renderer is the drawing surface a game renders into. Coordinates are in
// world (field) units; implementations scale them to their own space.
type Renderer interface {
	// Clear wipes the frame to the background color.
	Clear()

	// DrawRect fills an axis-aligned rectangle.
	DrawRect(pos, size Vec2, c RGB)

	// DrawLine strokes a segment with the given width.
	DrawLine(p0, p1 Vec2, c RGB, width float64)

	// DrawPolygon fills a closed polygon.
	DrawPolygon(points []Vec2, c RGB)

	// DrawText draws unscaled text with its top-left corner at pos.
	DrawText(text string, pos Vec2, c RGB)

	// Present finishes the frame.
	Present()
}

// FillRune is the glyph used for solid shapes on a Screen.
const FillRune = '█'

// ScreenRenderer rasterizes world-space drawing calls onto a character Screen.
type ScreenRenderer struct {
	screen *Screen
	fieldW float64
	fieldH float64
	frames int
}

// NewScreenRenderer creates a renderer that maps a fieldW x fieldH world onto
// the full screen.
func NewScreenRenderer(screen *Screen, fieldW, fieldH float64) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the underlying screen buffer.
func (r *ScreenRenderer) Screen() *Screen {
	return r.screen
}

// Frames returns how many frames have been presented.
func (r *ScreenRenderer) Frames() int {
	return r.frames
}

func (r *ScreenRenderer) scale() (float64, float64) {
	if r.fieldW <= 0 || r.fieldH <= 0 {
		return 1, 1
	}
	return float64(r.screen.Width()) / r.fieldW, float64(r.screen.Height()) / r.fieldH
}

// toCell converts a world point to the cell that contains it.
func (r *ScreenRenderer) toCell(p Vec2) (int, int) {
	sx, sy := r.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// Clear implements Renderer.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// DrawRect implements Renderer. Every cell the rectangle touches is filled,
// so small shapes never vanish.
func (r *ScreenRenderer) DrawRect(pos, size Vec2, c RGB) {
	sx, sy := r.scale()
	x0 := int(math.Floor(pos.X * sx))
	y0 := int(math.Floor(pos.Y * sy))
	x1 := int(math.Ceil((pos.X + size.X) * sx))
	y1 := int(math.Ceil((pos.Y + size.Y) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r.screen.DrawRectColored(NewRect(x0, y0, x1-x0, y1-y0), FillRune, c)
}

// DrawLine implements Renderer using Bresenham in cell space.
// Width is ignored: a cell is already wider than any stroke.
func (r *ScreenRenderer) DrawLine(p0, p1 Vec2, c RGB, _ float64) {
	x0, y0 := r.toCell(p0)
	x1, y1 := r.toCell(p1)

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	e := dx + dy

	for {
		r.screen.SetColored(x0, y0, FillRune, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += stepX
		}
		if e2 <= dx {
			e += dx
			y0 += stepY
		}
	}
}

// DrawPolygon implements Renderer. Cells whose centre lies inside the
// polygon are filled; vertices are always stamped.
func (r *ScreenRenderer) DrawPolygon(points []Vec2, c RGB) {
	if len(points) == 0 {
		return
	}
	sx, sy := r.scale()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	for cy := int(math.Floor(minY * sy)); cy <= int(math.Floor(maxY*sy)); cy++ {
		for cx := int(math.Floor(minX * sx)); cx <= int(math.Floor(maxX*sx)); cx++ {
			centre := Vec2{X: (float64(cx) + 0.5) / sx, Y: (float64(cy) + 0.5) / sy}
			if pointInPolygon(centre, points) {
				r.screen.SetColored(cx, cy, FillRune, c)
			}
		}
	}

	for _, p := range points {
		x, y := r.toCell(p)
		r.screen.SetColored(x, y, FillRune, c)
	}
}

// DrawText implements Renderer.
func (r *ScreenRenderer) DrawText(text string, pos Vec2, c RGB) {
	x, y := r.toCell(pos)
	r.screen.DrawTextColored(x, y, text, c)
}

// Present implements Renderer.
func (r *ScreenRenderer) Present() {
	r.frames++
}

// pointInPolygon is the even-odd ray casting test.
func pointInPolygon(p Vec2, poly []Vec2) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
