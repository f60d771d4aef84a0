package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling holds the multipliers a preset applies to the loaded config.
type presetScaling struct {
	spawnInterval float64
	playerSpeed   float64
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {spawnInterval: 2.0, playerSpeed: 1.0},
	DifficultyNormal: {spawnInterval: 1.0, playerSpeed: 1.0},
	DifficultyHard:   {spawnInterval: 0.5, playerSpeed: 1.2},
}

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(name)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
	return p, nil
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
// Easy spawns enemies half as often, hard twice as often with a faster player.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	s, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Timing.SpawnInterval *= s.spawnInterval
	cfg.Player.Speed *= s.playerSpeed
}
