package runner

import (
	"math/rand"
	"time"

	"github.com/pdudko/runcat/internal/config"
	"github.com/pdudko/runcat/internal/core"
)

// frameScale normalizes delta time to the 60fps reference rate: obstacle
// speed is configured in world units per reference frame.
const frameScale = 60.0

// Obstacle is one crate scrolling toward the character. Obstacles sit on the
// ground; only the left edge moves.
type Obstacle struct {
	X      float64 // Left edge in world units
	Width  float64
	Height float64
}

// Box returns the obstacle's collision box in world space.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, 0, o.Width, o.Height)
}

// Manager owns the obstacle arena: a fixed-capacity backing store, a stack of
// free record indices and the list of active indices in spawn order. An index
// is always in exactly one of the two sets, so recycling never allocates.
type Manager struct {
	pool   []Obstacle // Backing records, grown on demand up to capacity
	free   []int      // Indices available for reuse, stack order
	active []int      // Indices of live obstacles, spawn order

	rng        *rand.Rand
	cfg        config.ObstaclesConfig
	spawn      config.SpawnConfig
	worldW     float64
	spawnTimer time.Duration
}

// NewManager creates an obstacle manager for a world of the given width.
func NewManager(seed int64, worldW float64, cfg config.ObstaclesConfig, spawn config.SpawnConfig) *Manager {
	m := &Manager{
		cfg:    cfg,
		spawn:  spawn,
		worldW: worldW,
	}
	m.Reset(seed)
	return m
}

// Reset discards all records, empties both index sets, zeroes the spawn timer
// and reseeds the RNG. Backing capacity is retained for reuse.
func (m *Manager) Reset(seed int64) {
	m.pool = m.pool[:0]
	m.free = m.free[:0]
	m.active = m.active[:0]
	m.spawnTimer = 0
	m.rng = rand.New(rand.NewSource(seed))
}

// Update advances all active obstacles by dt at the given speed, recycles the
// ones that scrolled past the off-screen threshold, and spawns a new obstacle
// when the accumulated time exceeds the current randomized delay. interval is
// the score-derived spawn interval.
func (m *Manager) Update(dt time.Duration, speed float64, interval time.Duration) {
	dtFrames := dt.Seconds() * frameScale

	// Move, recycling off-screen obstacles in place
	retained := m.active[:0]
	for _, idx := range m.active {
		m.pool[idx].X -= speed * dtFrames
		if m.pool[idx].X < m.cfg.OffscreenAt {
			m.free = append(m.free, idx)
			continue
		}
		retained = append(retained, idx)
	}
	m.active = retained

	// The delay is redrawn every update, so spawn timing stays a random
	// process rather than a fixed schedule.
	m.spawnTimer += dt
	if m.spawnTimer >= m.nextDelay(interval) {
		m.spawnObstacle()
		m.spawnTimer = 0
	}
}

// nextDelay draws a randomized spawn delay: uniform over the interval plus a
// fixed base, clamped upward to the minimum gap.
func (m *Manager) nextDelay(interval time.Duration) time.Duration {
	var d time.Duration
	if interval > 0 {
		d = time.Duration(m.rng.Int63n(int64(interval)))
	}
	d += time.Duration(m.spawn.RandomBaseMs) * time.Millisecond
	minGap := time.Duration(m.spawn.MinGapMs) * time.Millisecond
	if d < minGap {
		d = minGap
	}
	return d
}

// spawnObstacle places a randomized crate at the world's right edge, reusing
// a free record when one exists. At capacity the spawn is skipped; the
// minimum gap keeps the population well below that in practice.
func (m *Manager) spawnObstacle() {
	var idx int
	switch {
	case len(m.free) > 0:
		idx = m.free[len(m.free)-1]
		m.free = m.free[:len(m.free)-1]
	case len(m.pool) < m.cfg.Capacity:
		idx = len(m.pool)
		m.pool = append(m.pool, Obstacle{})
	default:
		return
	}

	m.pool[idx] = Obstacle{
		X:      m.worldW,
		Width:  m.cfg.MinWidth + m.rng.Float64()*(m.cfg.MaxWidth-m.cfg.MinWidth),
		Height: m.cfg.MinHeight + m.rng.Float64()*(m.cfg.MaxHeight-m.cfg.MinHeight),
	}
	m.active = append(m.active, idx)
}

// Len returns the number of active obstacles.
func (m *Manager) Len() int {
	return len(m.active)
}

// At returns the active obstacle at position i in spawn order.
func (m *Manager) At(i int) Obstacle {
	return m.pool[m.active[i]]
}

// FreeCount returns the number of records waiting for reuse.
func (m *Manager) FreeCount() int {
	return len(m.free)
}

// Hits reports whether the given box overlaps any active obstacle. The scan
// stops at the first hit.
func (m *Manager) Hits(box core.Box) bool {
	for _, idx := range m.active {
		if box.Overlaps(m.pool[idx].Box()) {
			return true
		}
	}
	return false
}
