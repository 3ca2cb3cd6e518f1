package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Best     int   // Highest score on record, shown in the HUD
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase Phase // Current phase of the run
	Score int   // Current score
	Best  int   // Best score seen so far, including this run
	Level int   // Difficulty level reached
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is implemented by the playable simulation. The platform drives it:
// Reset once per session, Step per tick with the measured elapsed time,
// Render into a screen buffer whenever a frame is due.
type Game interface {
	// Reset initializes or fully restarts the game with the given runtime.
	Reset(runtime RuntimeConfig)

	// Step advances the simulation by one tick. dt is the wall time since
	// the previous tick; obstacle movement scales with it while character
	// physics advance one fixed tick.
	Step(in InputFrame, dt time.Duration) StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *Screen)

	// State reports the current game state without advancing it.
	State() GameState
}
