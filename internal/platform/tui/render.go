package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

// screenRenderer turns a Screen into styled terminal text.
// Cell colors use the same RGB values as PNG screenshots, so both show the
// game's configured palette.
type screenRenderer struct {
	styles [core.NumColors]lipgloss.Style
	help   lipgloss.Style
	status lipgloss.Style
}

// newScreenRenderer builds the styles for game on lr. A registry.Themed game
// gets its background painted behind every cell and its text color on
// default glyphs; other games keep the terminal's colors.
func newScreenRenderer(lr *lipgloss.Renderer, game registry.Game) *screenRenderer {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}

	sr := &screenRenderer{
		help:   lr.NewStyle().Foreground(lipgloss.Color("241")),
		status: lr.NewStyle().Foreground(lipgloss.Color(core.ColorSalmon.Hex())),
	}

	base := lr.NewStyle()
	themed, hasTheme := game.(registry.Themed)
	var theme core.Theme
	if hasTheme {
		theme = themed.Theme()
		base = base.Background(lipgloss.Color(theme.Background.Hex()))
		sr.status = sr.status.Foreground(lipgloss.Color(theme.Accent.Hex()))
	}

	for i := range sr.styles {
		c := core.Color(i)
		if c == core.ColorDefault {
			if hasTheme {
				c = theme.Text
			} else {
				sr.styles[i] = base
				continue
			}
		}
		sr.styles[i] = base.Foreground(lipgloss.Color(c.Hex()))
	}
	return sr
}

// style returns the style for c, falling back to the default glyph style.
func (sr *screenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) >= len(sr.styles) {
		c = core.ColorDefault
	}
	return sr.styles[c]
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *screenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
