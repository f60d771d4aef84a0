// Package core provides fundamental types and utilities for the arena game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or direction in continuous world units.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box in world units, described by its
// center and full extents.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at center with the given full size.
func NewBox(center, size Vec2) Box {
	return Box{Center: center, Size: size}
}

// Min returns the lower-left corner (y grows upward in world space).
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Overlaps reports whether the two boxes share an area of non-zero size.
// Boxes that only touch along an edge or a corner do not overlap.
func (b Box) Overlaps(other Box) bool {
	aMin, aMax := b.Min(), b.Max()
	bMin, bMax := other.Min(), other.Max()

	if aMin.X >= bMax.X || bMin.X >= aMax.X {
		return false
	}
	if aMin.Y >= bMax.Y || bMin.Y >= aMax.Y {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
