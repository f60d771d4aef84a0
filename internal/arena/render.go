package arena

import (
	"fmt"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// Visual characters for rendering
const (
	WallChar   = '▓'
	EnemyChar  = '█'
	PlayerChar = '█'
)

// hudRows is the number of rows reserved above the arena for the scoreboard.
const hudRows = 1

// drawOrder puts the player on top of everything else.
var drawOrder = [...]Kind{KindWall, KindEnemy, KindPlayer}

// Render draws the arena and the scoreboard to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	UpdateScoreboard(g.label, g.world.Scoreboard)

	vp := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	for _, kind := range drawOrder {
		for _, e := range g.world.Entities() {
			if e.Kind != kind {
				continue
			}
			dst.DrawRect(g.camera.Project(e.Box(), vp), glyph(kind), e.Color)
		}
	}

	g.label.Draw(dst, 1, 0)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func glyph(k Kind) rune {
	switch k {
	case KindWall:
		return WallChar
	case KindEnemy:
		return EnemyChar
	default:
		return PlayerChar
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// Snapshot returns a plain-text dump of the current frame, one line of
// state followed by the rendered screen.
func (g *Game) Snapshot(w, h int) string {
	scr := core.NewScreen(w, h)
	g.Render(scr)
	st := g.State()
	return fmt.Sprintf("score=%d enemies=%d ticks=%d\n%s\n", st.Score, st.Enemies, st.Ticks, scr.String())
}
