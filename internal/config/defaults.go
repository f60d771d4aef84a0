package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-arena/internal/core"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Arena: ArenaGeometry{
			LeftWall:      -450,
			RightWall:     450,
			BottomWall:    -300,
			TopWall:       300,
			WallThickness: 10,
		},
		Player: ArenaPlayer{
			Width:    60,
			Height:   60,
			Speed:    500,
			Padding:  10,
			FloorGap: 60,
		},
		Enemy: ArenaEnemy{
			Width:  30,
			Height: 30,
		},
		Timing: ArenaTiming{
			TickRate:      60,
			SpawnInterval: 1.0,
			MaxFrameTime:  0.25,
		},
		Colors: ArenaColors{
			Background: core.ColorLightGray,
			Player:     core.ColorSlateBlue,
			Wall:       core.ColorGray,
			Enemy:      core.ColorBrightYellow,
			Text:       core.ColorBrightBlue,
			Score:      core.ColorSalmon,
		},
		Sound: ArenaSound{
			Path:   "assets/sounds/breakout_collision.ogg",
			Volume: 0,
			ToneHz: 660,
			ToneMs: 60,
		},
		Input: ArenaInput{
			HoldWindow: 0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arena":
		return defaultArenaYAML
	default:
		return nil
	}
}
