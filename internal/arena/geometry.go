package arena

import (
	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// WallLocation is the side of the arena a wall sits on.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// Walls lists every wall side in spawn order.
var Walls = [4]WallLocation{WallLeft, WallRight, WallBottom, WallTop}

// String returns the side name.
func (l WallLocation) String() string {
	switch l {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// Position returns the wall center.
func (l WallLocation) Position(g config.ArenaGeometry) core.Vec2 {
	switch l {
	case WallLeft:
		return core.V2(g.LeftWall, 0)
	case WallRight:
		return core.V2(g.RightWall, 0)
	case WallBottom:
		return core.V2(0, g.BottomWall)
	default:
		return core.V2(0, g.TopWall)
	}
}

// Size returns the wall extents. Walls overlap at the corners by half a
// thickness so the outline has no gaps.
func (l WallLocation) Size(g config.ArenaGeometry) core.Vec2 {
	switch l {
	case WallLeft, WallRight:
		return core.V2(g.WallThickness, g.Height()+g.WallThickness)
	default:
		return core.V2(g.Width()+g.WallThickness, g.WallThickness)
	}
}

// Bounds is the rectangle the player's center is confined to.
type Bounds struct {
	Left, Right float64
	Bottom, Up  float64
}

// PlayerBounds derives the player bounds from the arena edges, the wall
// thickness, the player's half size and its padding.
func PlayerBounds(cfg config.ArenaConfig) Bounds {
	var b Bounds
	b.Left, b.Right, b.Bottom, b.Up = cfg.PlayerLimits()
	return b
}

// Clamp moves v to the nearest point inside the bounds.
func (b Bounds) Clamp(v core.Vec2) core.Vec2 {
	return core.V2(core.ClampF(v.X, b.Left, b.Right), core.ClampF(v.Y, b.Bottom, b.Up))
}
