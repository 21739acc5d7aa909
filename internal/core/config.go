package core

// RuntimeConfig contains configuration passed to the game by the platform.
// The game uses it to size its terminal projection and to seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState summarizes the game for the platform after every tick.
type GameState struct {
	Score  int    // Current score
	Phase  string // "starting", "playing" or "ended"
	Ended  bool   // Whether the current run has crashed
	Paused bool   // Whether the platform paused the simulation
}

// RunSummary describes one finished run: everything needed to replay it.
type RunSummary struct {
	Seed     int64 // Seed the obstacle generator used for this run
	TickRate int   // Fixed ticks per second
	Ticks    int   // Ticks from the start of the run until the crash
	Taps     []int // Tick offsets of primary inputs, relative to the run start
	Score    int   // Score at the crash
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Finished is set on the tick a run crashes.
	Finished *RunSummary
}
