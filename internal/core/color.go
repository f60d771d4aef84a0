package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSlateBlue
	ColorSalmon
	ColorLightGray

	// NumColors is the number of named colors.
	NumColors = int(iota)
)

// colorNames maps config names to colors. Order matches the constants above.
var colorNames = []string{
	"default",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright_red",
	"bright_green",
	"bright_yellow",
	"bright_blue",
	"bright_magenta",
	"bright_cyan",
	"bright_white",
	"orange",
	"gray",
	"slate_blue",
	"salmon",
	"light_gray",
}

// colorRGB holds the 0-255 RGB value of each color, used for image output.
var colorRGB = [][3]uint8{
	{229, 229, 229},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{241, 76, 76},
	{35, 209, 139},
	{255, 255, 128},
	{128, 128, 255},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
	{255, 135, 0},
	{138, 138, 138},
	{77, 77, 179},
	{255, 128, 128},
	{204, 204, 204},
}

// ParseColor resolves a config color name such as "bright_yellow".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// String returns the config name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// RGB returns the color as 8-bit red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(colorRGB) {
		c = ColorDefault
	}
	v := colorRGB[c]
	return v[0], v[1], v[2]
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Theme is the backdrop a game paints its cells on.
type Theme struct {
	Background Color // Fills every cell
	Text       Color // Replaces ColorDefault glyphs
	Accent     Color // Status messages
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so colors can be
// written by name in YAML configs.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
