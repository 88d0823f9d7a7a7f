package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockarena/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.RGB
}

// styleCache memoizes lipgloss styles per color pair for one render pass.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(fg, bg core.RGB) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(styleCache)
	bg := s.Background()

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}

// FieldSize returns the largest screen that shows a square arena inside a
// termW x termH terminal, reserving one row for the status line. Terminal
// cells are roughly twice as tall as they are wide, so the arena gets twice
// as many columns as rows.
func FieldSize(termW, termH int) (w, h int) {
	h = termH - 1
	if h < 1 {
		h = 1
	}
	w = min(termW, 2*h)
	if w < 2 {
		w = 2
	}
	h = w / 2
	return w, h
}
