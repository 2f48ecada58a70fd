package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceBuiltin  = "builtin"
	SourceEmbedded = "embedded"
)

const fileName = "blitz.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.bulletstorm/configs/blitz.yaml ->
// ./configs/blitz.yaml -> embedded default -> hard-coded default.
// Files only need to name the keys they override. The second return value
// names where the configuration came from.
func Load(customPath string) (BlitzConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlitzConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BlitzConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := Parse(defaultBlitzYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultBlitzConfig(), SourceBuiltin, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (BlitzConfig, error) {
	cfg := DefaultBlitzConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlitzConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlitzConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c BlitzConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c BlitzConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("screen.width", float64(c.Screen.Width))
	positive("screen.height", float64(c.Screen.Height))
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.max_jumps", float64(c.Player.MaxJumps))
	if c.Player.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("player.jump_impulse must be negative (upward), got %v", c.Player.JumpImpulse))
	}
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	positive("enemies.base_count", float64(c.Enemies.BaseCount))
	positive("enemies.base_speed", c.Enemies.BaseSpeed)
	positive("enemies.behavior_interval_ms", float64(c.Enemies.BehaviorIntervalMs))
	positive("enemies.circle_period_ms", c.Enemies.CirclePeriodMs)
	positive("enemies.zigzag_period_ms", c.Enemies.ZigzagPeriodMs)
	if c.Enemies.MaxCount < c.Enemies.BaseCount {
		errs = append(errs, fmt.Errorf("enemies.max_count (%d) is below base_count (%d)", c.Enemies.MaxCount, c.Enemies.BaseCount))
	}
	if c.Enemies.MaxSpeed < c.Enemies.BaseSpeed {
		errs = append(errs, fmt.Errorf("enemies.max_speed (%v) is below base_speed (%v)", c.Enemies.MaxSpeed, c.Enemies.BaseSpeed))
	}
	positive("bullets.width", c.Bullets.Width)
	positive("bullets.height", c.Bullets.Height)
	positive("bullets.speed", c.Bullets.Speed)
	positive("bullets.shot_delay_ms", float64(c.Bullets.ShotDelayMs))
	positive("bullets.rapid_fire_count", float64(c.Bullets.RapidFireCount))
	positive("powerups.size", c.PowerUps.Size)
	positive("powerups.duration_ms", float64(c.PowerUps.DurationMs))
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be within [0, 1], got %v", c.PowerUps.SpawnChance))
	}
	positive("scoring.kill_points", float64(c.Scoring.KillPoints))
	positive("scoring.combo_window_ms", float64(c.Scoring.ComboWindowMs))
	if c.Scoring.MaxMultiplier < 1 {
		errs = append(errs, fmt.Errorf("scoring.max_multiplier must be at least 1, got %v", c.Scoring.MaxMultiplier))
	}
	if c.Loop.TickRate <= 0 || c.Loop.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be within [1, %d], got %d", MaxTickRate, c.Loop.TickRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}
	for i, p := range c.Layout.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("layout.platforms[%d] has non-positive size", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bulletstorm", "configs", filename)
}
