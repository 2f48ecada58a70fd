package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (front-end only)
	ScreenH  int   // Terminal height in characters (front-end only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for front-ends.
type GameState struct {
	Score      int
	HighScore  int
	Level      int
	Multiplier float64
	Paused     bool
	Tick       int // Frames simulated while unpaused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events is only valid until the next Step.
type StepResult struct {
	State  GameState
	Events []Event
}
