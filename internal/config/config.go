// Package config provides YAML-based game configuration loading and
// difficulty presets for the arena game.
package config

import (
	"time"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// ArenaConfig contains all configuration for the arena game.
type ArenaConfig struct {
	Arena  ArenaGeometry `yaml:"arena"`
	Player ArenaPlayer   `yaml:"player"`
	Enemy  ArenaEnemy    `yaml:"enemy"`
	Timing ArenaTiming   `yaml:"timing"`
	Colors ArenaColors   `yaml:"colors"`
	Sound  ArenaSound    `yaml:"sound"`
	Input  ArenaInput    `yaml:"input"`
}

// PlayerLimits returns the range the player's center may occupy: the arena
// edges moved inward by half a wall, half the player and the padding.
func (c ArenaConfig) PlayerLimits() (left, right, bottom, up float64) {
	halfWall := c.Arena.WallThickness / 2
	left = c.Arena.LeftWall + halfWall + c.Player.Width/2 + c.Player.Padding
	right = c.Arena.RightWall - halfWall - c.Player.Width/2 - c.Player.Padding
	bottom = c.Arena.BottomWall + halfWall + c.Player.Height/2 + c.Player.Padding
	up = c.Arena.TopWall - halfWall - c.Player.Height/2 - c.Player.Padding
	return left, right, bottom, up
}

// PlayerStart returns where the player spawns.
func (c ArenaConfig) PlayerStart() core.Vec2 {
	return core.V2(0, c.Arena.BottomWall+c.Player.FloorGap)
}

// ArenaGeometry defines wall positions in world units.
// The arena is centered on the origin.
type ArenaGeometry struct {
	LeftWall      float64 `yaml:"left_wall"`   // x coordinate
	RightWall     float64 `yaml:"right_wall"`  // x coordinate
	BottomWall    float64 `yaml:"bottom_wall"` // y coordinate
	TopWall       float64 `yaml:"top_wall"`    // y coordinate
	WallThickness float64 `yaml:"wall_thickness"`
}

// Width returns the horizontal distance between the side walls.
func (g ArenaGeometry) Width() float64 {
	return g.RightWall - g.LeftWall
}

// Height returns the vertical distance between the bottom and top walls.
func (g ArenaGeometry) Height() float64 {
	return g.TopWall - g.BottomWall
}

// ArenaPlayer defines player parameters.
type ArenaPlayer struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // Units per second
	Padding  float64 `yaml:"padding"`   // Closest distance to a wall
	FloorGap float64 `yaml:"floor_gap"` // Start height above the bottom wall
}

// ArenaEnemy defines enemy parameters.
type ArenaEnemy struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MaxTickRate bounds the physics rate so a tick always lasts at least a
// millisecond.
const MaxTickRate = 1000

// ArenaTiming defines the two simulation clocks.
type ArenaTiming struct {
	TickRate      int     `yaml:"tick_rate"`      // Physics ticks per second
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between enemy spawns
	MaxFrameTime  float64 `yaml:"max_frame_time"` // Seconds simulated per frame at most
}

// TimeStep returns the physics tick length in seconds.
func (t ArenaTiming) TimeStep() float64 {
	return 1.0 / float64(t.TickRate)
}

// TickDuration returns the physics tick length.
func (t ArenaTiming) TickDuration() time.Duration {
	return seconds(t.TimeStep())
}

// SpawnDuration returns the enemy spawn interval.
func (t ArenaTiming) SpawnDuration() time.Duration {
	return seconds(t.SpawnInterval)
}

// FrameCap returns the longest wall-clock slice simulated per frame.
func (t ArenaTiming) FrameCap() time.Duration {
	return seconds(t.MaxFrameTime)
}

// ArenaColors defines the palette by color name.
type ArenaColors struct {
	Background core.Color `yaml:"background"`
	Player     core.Color `yaml:"player"`
	Wall       core.Color `yaml:"wall"`
	Enemy      core.Color `yaml:"enemy"`
	Text       core.Color `yaml:"text"`
	Score      core.Color `yaml:"score"`
}

// ArenaSound defines the collision sound.
type ArenaSound struct {
	Path   string  `yaml:"path"`    // .ogg or .wav asset
	Volume float64 `yaml:"volume"`  // Volume offset, base 2 (0 = unchanged)
	ToneHz float64 `yaml:"tone_hz"` // Fallback tone frequency
	ToneMs int     `yaml:"tone_ms"` // Fallback tone length
}

// ToneDuration returns the fallback tone length.
func (s ArenaSound) ToneDuration() time.Duration {
	return time.Duration(s.ToneMs) * time.Millisecond
}

// ArenaInput defines how terminal key presses become held directions.
type ArenaInput struct {
	HoldWindow float64 `yaml:"hold_window"` // Seconds a press keeps a direction held
}

// HoldDuration returns the hold window.
func (i ArenaInput) HoldDuration() time.Duration {
	return seconds(i.HoldWindow)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
