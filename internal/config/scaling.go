package config

import "math"

// LevelScaling derives per-level wave parameters. Both grow linearly with the
// level and saturate at their caps.
type LevelScaling struct {
	cfg EnemyConfig
}

// NewLevelScaling creates a scaling calculator for the given enemy tuning.
func NewLevelScaling(cfg EnemyConfig) *LevelScaling {
	return &LevelScaling{cfg: cfg}
}

// EnemyCount returns the wave size for level: min(base + level - 1, max).
func (s *LevelScaling) EnemyCount(level int) int {
	if level < 1 {
		level = 1
	}
	return min(s.cfg.BaseCount+level-1, s.cfg.MaxCount)
}

// EnemySpeed returns enemy speed for level: min(base + (level-1)*step, max).
func (s *LevelScaling) EnemySpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Min(s.cfg.BaseSpeed+float64(level-1)*s.cfg.SpeedStep, s.cfg.MaxSpeed)
}
