package arena

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// pixelsPerUnit scales world units to PNG pixels.
const pixelsPerUnit = 1.0

// DrawImage paints the current frame with real colors and proportions.
// The image covers the whole arena including walls.
func (g *Game) DrawImage() *gg.Context {
	w := int(g.camera.View.X * pixelsPerUnit)
	h := int(g.camera.View.Y * pixelsPerUnit)
	dc := gg.NewContext(w, h)

	dc.SetColor(rgba(g.cfg.Colors.Background))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	scale, ox, oy := g.camera.Pixels(w, h)
	for _, kind := range drawOrder {
		for _, e := range g.world.Entities() {
			if e.Kind != kind {
				continue
			}
			lo, hi := e.Box().Min(), e.Box().Max()
			dc.SetColor(rgba(e.Color))
			dc.DrawRectangle(ox+lo.X*scale, oy-hi.Y*scale, (hi.X-lo.X)*scale, (hi.Y-lo.Y)*scale)
			dc.Fill()
		}
	}

	UpdateScoreboard(g.label, g.world.Scoreboard)
	x := 5.0
	for _, s := range g.label.Sections {
		dc.SetColor(rgba(s.Color))
		dc.DrawStringAnchored(s.Value, x, 5, 0, 1)
		sw, _ := dc.MeasureString(s.Value)
		x += sw
	}
	return dc
}

// EncodePNG writes the current frame as a PNG image.
func (g *Game) EncodePNG(w io.Writer) error {
	return g.DrawImage().EncodePNG(w)
}

// SavePNG writes the current frame to a PNG file, creating parent directories.
func (g *Game) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("arena: create screenshot dir: %w", err)
	}
	if err := g.DrawImage().SavePNG(path); err != nil {
		return fmt.Errorf("arena: save png: %w", err)
	}
	return nil
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
