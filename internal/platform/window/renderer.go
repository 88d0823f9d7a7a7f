// Package window runs Block Arena in a desktop window using Ebitengine.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockarena/internal/core"
)

// Debug font glyph cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Renderer implements core.Renderer on an Ebitengine image. World units map
// one to one onto pixels; the window scales the logical screen.
type Renderer struct {
	dst      *ebiten.Image
	bg       color.RGBA
	whiteImg *ebiten.Image
	textBuf  *ebiten.Image
}

// NewRenderer creates a renderer that clears to bg.
func NewRenderer(bg core.RGB) *Renderer {
	return &Renderer{bg: toColor(bg)}
}

// Begin targets dst for the next frame.
func (r *Renderer) Begin(dst *ebiten.Image) {
	r.dst = dst
}

func toColor(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Clear implements core.Renderer.
func (r *Renderer) Clear() {
	r.dst.Fill(r.bg)
}

// DrawRect implements core.Renderer.
func (r *Renderer) DrawRect(pos, size core.Vec2, c core.RGB) {
	vector.FillRect(r.dst, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), toColor(c), false)
}

// DrawLine implements core.Renderer.
func (r *Renderer) DrawLine(p0, p1 core.Vec2, c core.RGB, width float64) {
	vector.StrokeLine(r.dst, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), float32(width), toColor(c), true)
}

// DrawPolygon implements core.Renderer.
func (r *Renderer) DrawPolygon(points []core.Vec2, c core.RGB) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(c.R) / 255
		vertices[i].ColorG = float32(c.G) / 255
		vertices[i].ColorB = float32(c.B) / 255
		vertices[i].ColorA = 1
	}

	if r.whiteImg == nil {
		r.whiteImg = ebiten.NewImage(1, 1)
		r.whiteImg.Fill(color.White)
	}
	r.dst.DrawTriangles(vertices, indices, r.whiteImg, nil)
}

// DrawText implements core.Renderer. The debug font is drawn white into a
// scratch image and tinted on the way to the frame.
func (r *Renderer) DrawText(text string, pos core.Vec2, c core.RGB) {
	w, h := textSize(text)
	if w == 0 {
		return
	}
	if r.textBuf == nil || r.textBuf.Bounds().Dx() < w || r.textBuf.Bounds().Dy() < h {
		r.textBuf = ebiten.NewImage(max(w, 256), max(h, glyphH))
	}
	r.textBuf.Clear()
	ebitenutil.DebugPrintAt(r.textBuf, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(toColor(c))
	r.dst.DrawImage(r.textBuf.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image), op)
}

// Present implements core.Renderer. Ebitengine presents after Draw returns.
func (r *Renderer) Present() {}

// textSize returns the debug font extent of text in pixels.
func textSize(text string) (w, h int) {
	lines, longest, cur := 1, 0, 0
	for _, ch := range text {
		if ch == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	if longest == 0 {
		return 0, 0
	}
	return longest * glyphW, lines * glyphH
}
