package runner

import "github.com/pdudko/runcat/internal/core"

// Snapshot captures the observable simulation state at a single tick. Two
// games stepped with the same seed, inputs and deltas produce identical
// snapshots.
type Snapshot struct {
	Tick      int
	Phase     core.Phase
	Score     int
	Level     int
	Speed     float64
	CharY     float64
	CharVel   float64
	Grounded  bool
	Obstacles []Obstacle
}

// Snapshot returns the current simulation state for debugging and
// determinism checks.
func (g *Game) Snapshot() Snapshot {
	obs := make([]Obstacle, g.obstacles.Len())
	for i := range obs {
		obs[i] = g.obstacles.At(i)
	}
	return Snapshot{
		Tick:      g.tickCount,
		Phase:     g.phase,
		Score:     int(g.score),
		Level:     g.level,
		Speed:     g.speed,
		CharY:     g.char.Y(),
		CharVel:   g.char.Velocity(),
		Grounded:  g.char.Grounded(),
		Obstacles: obs,
	}
}

// Equal reports whether two snapshots describe the same simulation state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Phase != other.Phase || s.Score != other.Score ||
		s.Level != other.Level || s.Speed != other.Speed ||
		s.CharY != other.CharY || s.CharVel != other.CharVel ||
		s.Grounded != other.Grounded || len(s.Obstacles) != len(other.Obstacles) {
		return false
	}
	for i := range s.Obstacles {
		if s.Obstacles[i] != other.Obstacles[i] {
			return false
		}
	}
	return true
}
