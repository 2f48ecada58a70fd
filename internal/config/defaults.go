package config

import (
	_ "embed"
)

//go:embed defaults/blitz.yaml
var defaultBlitzYAML []byte

// DefaultBlitzConfig returns the built-in tuning of the game.
func DefaultBlitzConfig() BlitzConfig {
	return BlitzConfig{
		Screen: ScreenConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:       50,
			Height:      50,
			Speed:       6,
			MaxJumps:    2,
			JumpImpulse: -12,
		},
		Physics: PhysicsConfig{Gravity: 0.5},
		Enemies: EnemyConfig{
			Width:              30,
			Height:             30,
			BaseCount:          5,
			MaxCount:           10,
			BaseSpeed:          3,
			SpeedStep:          0.5,
			MaxSpeed:           7,
			BehaviorIntervalMs: 3000,
			CircleRadius:       100,
			CirclePeriodMs:     500,
			ZigzagAmplitude:    5,
			ZigzagPeriodMs:     200,
		},
		Bullets: BulletConfig{
			Width:          8,
			Height:         8,
			Speed:          12,
			ShotDelayMs:    250,
			RapidFireCount: 3,
			SpreadDegrees:  15,
		},
		PowerUps: PowerUpConfig{
			Size:        20,
			DurationMs:  5000,
			SpawnChance: 0.02,
			MaxActive:   3,
		},
		Scoring: ScoringConfig{
			KillPoints:     100,
			ComboWindowMs:  2000,
			MultiplierStep: 0.5,
			MaxMultiplier:  4,
		},
		Layout: LayoutConfig{
			Platforms: []PlatformConfig{
				{X: 0, Y: 550, Width: 800, Height: 50},
				{X: 200, Y: 300, Width: 200, Height: 20},
				{X: 400, Y: 300, Width: 200, Height: 20},
				{X: 300, Y: 450, Width: 200, Height: 20},
			},
		},
		Loop:     LoopConfig{TickRate: 60},
		Audio:    AudioConfig{Enabled: false, Volume: 0.5},
		Terminal: TerminalConfig{HoldMs: 150},
	}
}
