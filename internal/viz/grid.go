package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gridlife/internal/life"
)

const (
	aliveGlyph = "█"
	deadGlyph  = "░"
)

// RenderGrid draws one generation, one glyph per cell separated by a space.
func RenderGrid(g *life.Grid, theme Theme) string {
	alive := lipgloss.NewStyle().Foreground(theme.Alive)
	dead := lipgloss.NewStyle().Foreground(theme.Dead)

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g.Alive(r, c) {
				sb.WriteString(alive.Render(aliveGlyph))
			} else {
				sb.WriteString(dead.Render(deadGlyph))
			}
		}
	}
	return sb.String()
}
