package arena

import (
	"math"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// Camera maps world units (origin at the center, y up) onto a grid of
// terminal cells (origin top-left, y down).
type Camera struct {
	Center core.Vec2 // World point shown in the middle of the viewport
	View   core.Vec2 // World extents visible in the viewport
}

// NewCamera frames the whole arena, walls included.
func NewCamera(g config.ArenaGeometry) Camera {
	return Camera{
		Center: core.V2((g.LeftWall+g.RightWall)/2, (g.BottomWall+g.TopWall)/2),
		View:   core.V2(g.Width()+g.WallThickness, g.Height()+g.WallThickness),
	}
}

// Project maps a world box to the cells it covers inside vp.
// Anything visible occupies at least one cell. The result is clipped to vp
// and has zero size when the box is off screen.
func (c Camera) Project(b core.Box, vp core.Rect) core.Rect {
	if vp.W <= 0 || vp.H <= 0 {
		return core.Rect{}
	}
	left := c.Center.X - c.View.X/2
	top := c.Center.Y + c.View.Y/2
	sx := float64(vp.W) / c.View.X
	sy := float64(vp.H) / c.View.Y

	lo, hi := b.Min(), b.Max()
	x0 := int(math.Floor((lo.X - left) * sx))
	x1 := int(math.Floor((hi.X - left) * sx))
	y0 := int(math.Floor((top - hi.Y) * sy))
	y1 := int(math.Floor((top - lo.Y) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = core.Max(x0, 0), core.Min(x1, vp.W)
	y0, y1 = core.Max(y0, 0), core.Min(y1, vp.H)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(vp.X+x0, vp.Y+y0, x1-x0, y1-y0)
}

// Pixels returns the scale and origin that map world units onto an image
// of w by h pixels. Used for PNG snapshots.
func (c Camera) Pixels(w, h int) (scale, originX, originY float64) {
	scale = math.Min(float64(w)/c.View.X, float64(h)/c.View.Y)
	originX = float64(w)/2 - c.Center.X*scale
	originY = float64(h)/2 + c.Center.Y*scale
	return scale, originX, originY
}
