package core

// RuntimeConfig is passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width in cells or pixels
	ScreenH  int   // Frontend height in cells or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Phase    string // Orchestrator state name
	Score    int
	Lives    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // Player asked to leave
}
