package core

// Phase is the top-level state of the game loop. Transitions follow a fixed
// machine: Home -> Running -> {Paused <-> Running, GameOver}; GameOver
// re-enters Running only through an explicit restart.
type Phase int

const (
	PhaseHome Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "Home"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
