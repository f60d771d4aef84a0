package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arena/internal/core"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ArenaConfig
	if err := yaml.Unmarshal(GetDefaultYAML("arena"), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultArenaConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded    = %+v", cfg, DefaultArenaConfig())
	}
}

func TestLoadArenaCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := `
player:
  speed: 250
timing:
  spawn_interval: 0.5
colors:
  enemy: red
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena() failed: %v", err)
	}

	if cfg.Player.Speed != 250 {
		t.Errorf("Player.Speed = %v, expected 250", cfg.Player.Speed)
	}
	if cfg.Timing.SpawnDuration() != 500*time.Millisecond {
		t.Errorf("SpawnDuration() = %v, expected 500ms", cfg.Timing.SpawnDuration())
	}
	if cfg.Colors.Enemy != core.ColorRed {
		t.Errorf("Colors.Enemy = %v, expected red", cfg.Colors.Enemy)
	}
	// Keys missing from the file keep their defaults
	if cfg.Arena.LeftWall != -450 || cfg.Player.Width != 60 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadArenaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArena(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	badColor := filepath.Join(dir, "color.yaml")
	os.WriteFile(badColor, []byte("colors:\n  player: chartreuse\n"), 0o600)
	if _, err := LoadArena(badColor); err == nil {
		t.Error("expected error for unknown color name")
	}

	flat := filepath.Join(dir, "flat.yaml")
	os.WriteFile(flat, []byte("arena:\n  top_wall: -300\n"), 0o600)
	_, err := LoadArena(flat)
	if err == nil || !strings.Contains(err.Error(), "height") {
		t.Errorf("expected height validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ArenaConfig)
		wantErr bool
	}{
		{"defaults", func(*ArenaConfig) {}, false},
		{"zero width", func(c *ArenaConfig) { c.Arena.RightWall = c.Arena.LeftWall }, true},
		{"negative thickness", func(c *ArenaConfig) { c.Arena.WallThickness = -1 }, true},
		{"zero player", func(c *ArenaConfig) { c.Player.Width = 0 }, true},
		{"zero enemy", func(c *ArenaConfig) { c.Enemy.Height = 0 }, true},
		{"zero tick rate", func(c *ArenaConfig) { c.Timing.TickRate = 0 }, true},
		{"zero spawn interval", func(c *ArenaConfig) { c.Timing.SpawnInterval = 0 }, true},
		{"player wider than arena", func(c *ArenaConfig) { c.Player.Width = 900 }, true},
		{"player exactly fits", func(c *ArenaConfig) { c.Player.Width = 900 - 10 - 20 }, false},
		{"floor gap above arena", func(c *ArenaConfig) { c.Player.FloorGap = 700 }, true},
		{"floor gap below player bounds", func(c *ArenaConfig) { c.Player.FloorGap = 20 }, true},
		{"floor gap on player bound", func(c *ArenaConfig) { c.Player.FloorGap = 45 }, false},
		{"off-center arena", func(c *ArenaConfig) { c.Arena.LeftWall = -400 }, true},
		{"spawn interval rounds to zero", func(c *ArenaConfig) { c.Timing.SpawnInterval = 1e-10 }, true},
		{"spawn interval shorter than a tick", func(c *ArenaConfig) { c.Timing.SpawnInterval = 0.01 }, true},
		{"spawn interval overflows", func(c *ArenaConfig) { c.Timing.SpawnInterval = 1e300 }, true},
		{"NaN spawn interval", func(c *ArenaConfig) { c.Timing.SpawnInterval = math.NaN() }, true},
		{"max frame time rounds to zero", func(c *ArenaConfig) { c.Timing.MaxFrameTime = 1e-12 }, true},
		{"infinite max frame time", func(c *ArenaConfig) { c.Timing.MaxFrameTime = math.Inf(1) }, true},
		{"tick rate overflows", func(c *ArenaConfig) { c.Timing.TickRate = 2000000000 }, true},
		{"tick rate above limit", func(c *ArenaConfig) { c.Timing.TickRate = MaxTickRate + 1 }, true},
		{"tick rate at limit", func(c *ArenaConfig) { c.Timing.TickRate = MaxTickRate }, false},
		{"NaN wall", func(c *ArenaConfig) { c.Arena.TopWall = math.NaN() }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArenaConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestPlayerLimits(t *testing.T) {
	cfg := DefaultArenaConfig()
	left, right, bottom, up := cfg.PlayerLimits()
	if left != -405 || right != 405 || bottom != -255 || up != 255 {
		t.Errorf("PlayerLimits() = %v %v %v %v, expected -405 405 -255 255", left, right, bottom, up)
	}
	if start := cfg.PlayerStart(); start != core.V2(0, -240) {
		t.Errorf("PlayerStart() = %+v, expected (0, -240)", start)
	}
}

func TestTimingDurations(t *testing.T) {
	timing := DefaultArenaConfig().Timing

	if got := timing.TimeStep(); got != 1.0/60.0 {
		t.Errorf("TimeStep() = %v, expected 1/60", got)
	}
	if got := timing.TickDuration(); got != 16666666*time.Nanosecond {
		t.Errorf("TickDuration() = %v, expected 16.666666ms", got)
	}
	if got := timing.FrameCap(); got != 250*time.Millisecond {
		t.Errorf("FrameCap() = %v, expected 250ms", got)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantSpawn float64
		wantSpeed float64
	}{
		{DifficultyEasy, 2.0, 500},
		{DifficultyNormal, 1.0, 500},
		{DifficultyHard, 0.5, 600},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultArenaConfig()
			ApplyArenaPreset(&cfg, tc.preset)
			if cfg.Timing.SpawnInterval != tc.wantSpawn {
				t.Errorf("SpawnInterval = %v, expected %v", cfg.Timing.SpawnInterval, tc.wantSpawn)
			}
			if cfg.Player.Speed != tc.wantSpeed {
				t.Errorf("Player.Speed = %v, expected %v", cfg.Player.Speed, tc.wantSpeed)
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if p, err := ParseDifficultyPreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v; expected normal", p, err)
	}
	if p, err := ParseDifficultyPreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, err)
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
