package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// styles holds one lipgloss style per palette colour.
var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		out[c] = st
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Runs of same-coloured cells share one style so escape sequences stay short.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}
