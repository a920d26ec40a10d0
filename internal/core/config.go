package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// NominalTickRate is the rate that per-tick speeds in game configs assume.
const NominalTickRate = 60

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: NominalTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickScale returns the dt a game should feed its simulation each tick so
// that motion speed does not depend on the frame rate.
func (c RuntimeConfig) TickScale() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return float64(NominalTickRate) / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level number, 1-based
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// RoundReport describes a finished round. The platform persists it.
type RoundReport struct {
	Level       int
	Score       int // Total score when the round ended
	RoundScore  int // Score gained during this round only
	Target      int
	Cleared     bool // Target reached
	ObjectsLeft int
	Ticks       int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Round *RoundReport // Non-nil on the tick a round ends
}
