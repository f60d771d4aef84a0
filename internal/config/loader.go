package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArena loads the arena configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
func LoadArena(customPath string) (ArenaConfig, error) {
	cfg, err := loadArena(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadArena(customPath string) (ArenaConfig, error) {
	// Missing keys in a partial file keep their default values
	cfg := DefaultArenaConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("arena.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultArenaConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/arena.yaml"); err == nil {
		candidate := DefaultArenaConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultArenaYAML, &cfg); err != nil {
		return DefaultArenaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations that would break the arena invariants.
func Validate(cfg ArenaConfig) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"left_wall", cfg.Arena.LeftWall},
		{"right_wall", cfg.Arena.RightWall},
		{"bottom_wall", cfg.Arena.BottomWall},
		{"top_wall", cfg.Arena.TopWall},
		{"wall_thickness", cfg.Arena.WallThickness},
		{"player.width", cfg.Player.Width},
		{"player.height", cfg.Player.Height},
		{"player.speed", cfg.Player.Speed},
		{"player.padding", cfg.Player.Padding},
		{"player.floor_gap", cfg.Player.FloorGap},
		{"enemy.width", cfg.Enemy.Width},
		{"enemy.height", cfg.Enemy.Height},
		{"spawn_interval", cfg.Timing.SpawnInterval},
		{"max_frame_time", cfg.Timing.MaxFrameTime},
		{"hold_window", cfg.Input.HoldWindow},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("config: %s must be a finite number, got %v", f.name, f.v)
		}
	}

	a := cfg.Arena
	t := cfg.Timing
	switch {
	case a.Width() <= 0:
		return fmt.Errorf("config: arena width must be positive, got %v", a.Width())
	case a.Height() <= 0:
		return fmt.Errorf("config: arena height must be positive, got %v", a.Height())
	case a.LeftWall+a.RightWall != 0 || a.BottomWall+a.TopWall != 0:
		return fmt.Errorf("config: arena must be centered on the origin, got x %v..%v y %v..%v",
			a.LeftWall, a.RightWall, a.BottomWall, a.TopWall)
	case a.WallThickness < 0:
		return fmt.Errorf("config: wall thickness must not be negative, got %v", a.WallThickness)
	case cfg.Player.Width <= 0 || cfg.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", cfg.Player.Width, cfg.Player.Height)
	case cfg.Enemy.Width <= 0 || cfg.Enemy.Height <= 0:
		return fmt.Errorf("config: enemy size must be positive, got %vx%v", cfg.Enemy.Width, cfg.Enemy.Height)
	case cfg.Player.Speed < 0:
		return fmt.Errorf("config: player speed must not be negative, got %v", cfg.Player.Speed)
	case cfg.Player.Padding < 0:
		return fmt.Errorf("config: player padding must not be negative, got %v", cfg.Player.Padding)
	case t.TickRate <= 0 || t.TickRate > MaxTickRate:
		return fmt.Errorf("config: tick rate must be between 1 and %d, got %d", MaxTickRate, t.TickRate)
	case t.SpawnInterval > maxSeconds || t.MaxFrameTime > maxSeconds:
		return fmt.Errorf("config: timing values must not exceed %v seconds", maxSeconds)
	case t.SpawnDuration() < t.TickDuration():
		return fmt.Errorf("config: spawn interval must be at least one tick (%v), got %v", t.TickDuration(), t.SpawnDuration())
	case t.FrameCap() < t.TickDuration():
		return fmt.Errorf("config: max frame time must be at least one tick (%v), got %v", t.TickDuration(), t.FrameCap())
	case cfg.Input.HoldWindow < 0 || cfg.Input.HoldWindow > maxSeconds:
		return fmt.Errorf("config: hold window must be between 0 and %v seconds, got %v", maxSeconds, cfg.Input.HoldWindow)
	}

	// The player's center needs a non-empty range between the walls
	left, right, bottom, up := cfg.PlayerLimits()
	if left > right {
		return fmt.Errorf("config: player (%v wide) does not fit the arena", cfg.Player.Width)
	}
	if bottom > up {
		return fmt.Errorf("config: player (%v tall) does not fit the arena", cfg.Player.Height)
	}
	start := cfg.PlayerStart()
	if start.X < left || start.X > right || start.Y < bottom || start.Y > up {
		return fmt.Errorf("config: player floor gap %v starts the player outside %v..%v",
			cfg.Player.FloorGap, bottom, up)
	}
	return nil
}

// maxSeconds keeps every configured duration well inside time.Duration.
const maxSeconds = 3600
