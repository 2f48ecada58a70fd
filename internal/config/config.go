// Package config handles loading and validating the Bulletstorm Blitz tuning.
package config

// BlitzConfig contains all tunables of the game. Distances are world pixels,
// speeds are pixels per frame and durations are milliseconds.
type BlitzConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Player   PlayerConfig   `yaml:"player"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Enemies  EnemyConfig    `yaml:"enemies"`
	Bullets  BulletConfig   `yaml:"bullets"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Layout   LayoutConfig   `yaml:"layout"`
	Loop     LoopConfig     `yaml:"loop"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// ScreenConfig is the size of the playfield.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	MaxJumps    int     `yaml:"max_jumps"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PhysicsConfig defines world physics.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// EnemyConfig defines enemies, wave sizes and AI timing.
type EnemyConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	BaseCount          int     `yaml:"base_count"`
	MaxCount           int     `yaml:"max_count"`
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedStep          float64 `yaml:"speed_step"`
	MaxSpeed           float64 `yaml:"max_speed"`
	BehaviorIntervalMs int64   `yaml:"behavior_interval_ms"`
	CircleRadius       float64 `yaml:"circle_radius"`
	CirclePeriodMs     float64 `yaml:"circle_period_ms"`
	ZigzagAmplitude    float64 `yaml:"zigzag_amplitude"`
	ZigzagPeriodMs     float64 `yaml:"zigzag_period_ms"`
}

// BulletConfig defines projectiles and the fire rate.
type BulletConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	ShotDelayMs    int64   `yaml:"shot_delay_ms"`
	RapidFireCount int     `yaml:"rapid_fire_count"`
	SpreadDegrees  float64 `yaml:"spread_degrees"`
}

// PowerUpConfig defines pickups.
type PowerUpConfig struct {
	Size        float64 `yaml:"size"`
	DurationMs  int64   `yaml:"duration_ms"`
	SpawnChance float64 `yaml:"spawn_chance"` // per frame, 0..1
	MaxActive   int     `yaml:"max_active"`
}

// ScoringConfig defines kill points and the combo multiplier.
type ScoringConfig struct {
	KillPoints     int     `yaml:"kill_points"`
	ComboWindowMs  int64   `yaml:"combo_window_ms"`
	MultiplierStep float64 `yaml:"multiplier_step"`
	MaxMultiplier  float64 `yaml:"max_multiplier"`
}

// LayoutConfig is the static platform layout.
type LayoutConfig struct {
	Platforms []PlatformConfig `yaml:"platforms"`
}

// PlatformConfig is one platform rectangle.
type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MaxTickRate bounds the tick rate so every tick gets its own millisecond.
const MaxTickRate = 1000

// LoopConfig defines the simulation rate.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// AudioConfig defines the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// TerminalConfig tunes the terminal front-end.
type TerminalConfig struct {
	// HoldMs is how long a key press counts as held, bridging the gap
	// before the terminal's key repeat kicks in.
	HoldMs int64 `yaml:"hold_ms"`
}
