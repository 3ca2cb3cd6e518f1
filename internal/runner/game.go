package runner

import (
	"time"

	"github.com/pdudko/runcat/internal/config"
	"github.com/pdudko/runcat/internal/core"
	"github.com/pdudko/runcat/internal/events"
)

// puffTTL is how long a landing dust mark stays visible.
const puffTTL = 400 * time.Millisecond

// puff is a transient landing dust mark, render-only.
type puff struct {
	x, y float64
	ttl  time.Duration
}

// Game is the endless runner session. It owns the character, the obstacle
// arena, score and difficulty progression, and the phase machine
// Home -> Running -> {Paused <-> Running, GameOver}; GameOver re-enters
// Running only through an explicit restart.
type Game struct {
	phase core.Phase

	char      *Character
	obstacles *Manager
	diff      *config.Difficulty
	board     *Leaderboard

	score     float64 // Accrues fractionally; floored for display
	prevScore int     // Floored score at the previous tick, for boundary crossings
	best      int
	startBest int // Session best when the current run started
	newRecord bool
	level     int
	speed     float64       // Obstacle speed, world units per reference frame
	interval  time.Duration // Score-derived spawn interval

	tickCount int
	runs      int64 // Completed run starts, offsets the seed per run
	baseSeed  int64
	maxStep   time.Duration

	runtime core.RuntimeConfig
	cfg     config.Config
	bus     *events.Bus

	puffs    []puff
	legFrame int // Run cycle animation counter
}

// New creates a game with the given configuration. Events go out on bus; a
// nil bus drops them.
func New(cfg config.Config, bus *events.Bus) *Game {
	g := &Game{
		cfg:     cfg,
		bus:     bus,
		diff:    config.NewDifficulty(cfg.Spawn, cfg.Score),
		board:   NewLeaderboard(cfg.Score.LeaderboardSize),
		maxStep: time.Duration(cfg.Sim.MaxStepMs) * time.Millisecond,
	}
	g.char = NewCharacter(cfg.Player, cfg.Physics, bus)
	g.char.OnLand(g.addPuff)
	g.obstacles = NewManager(0, cfg.World.Width, cfg.Obstacles, cfg.Spawn)
	return g
}

// Reset initializes the session: home screen, zero score, and the runtime's
// recorded best.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.baseSeed = runtime.Seed
	g.runs = 0
	g.best = runtime.Best
	g.phase = core.PhaseHome
	g.resetRun()
}

// Step advances the session by one tick. While Running it simulates; in the
// other phases it only reacts to transition inputs, so the platform may call
// it with dt 0 on key presses.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	if g.maxStep > 0 && dt > g.maxStep {
		dt = g.maxStep
	}

	switch g.phase {
	case core.PhaseHome:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.startRun()
		}
	case core.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePaused
			break
		}
		g.runTick(in, dt)
	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = core.PhaseRunning
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.startRun()
		}
	}

	return core.StepResult{State: g.State()}
}

// runTick advances one Running tick in fixed order: input, character physics,
// obstacle movement, collision, scoring, difficulty.
func (g *Game) runTick(in core.InputFrame, dt time.Duration) {
	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10

	if in.Has(core.ActionJump) {
		g.char.Jump()
	}

	g.char.Update()
	g.obstacles.Update(dt, g.speed, g.interval)

	if g.obstacles.Hits(g.char.Box()) {
		g.endRun()
		return
	}

	g.score += dt.Seconds() * g.cfg.Score.RatePerSecond
	cur := int(g.score)
	if cur > g.best {
		g.best = cur
		g.newRecord = true
	}

	g.interval = g.diff.SpawnInterval(cur)
	// One oversized tick can cross several level boundaries; each one counts.
	for i := g.diff.LevelUps(g.prevScore, cur); i > 0; i-- {
		g.level++
		g.speed += g.cfg.Score.SpeedIncrement
	}
	g.prevScore = cur

	g.updatePuffs(dt)
}

// endRun freezes the session: the collision event goes out, the final score
// joins the leaderboard, and the phase flips to GameOver.
func (g *Game) endRun() {
	g.bus.Publish(events.Collision)
	g.board.Add(int(g.score))
	g.phase = core.PhaseGameOver
}

// startRun resets run state and enters Running. Used both from Home and for
// the GameOver restart, which bypasses Home.
func (g *Game) startRun() {
	g.resetRun()
	g.startBest = g.best
	g.newRecord = false
	g.runs++
	g.phase = core.PhaseRunning
}

// resetRun restores score, difficulty, character and obstacles to their
// initial values. Each run draws a fresh obstacle pattern from a seed derived
// deterministically from the base seed.
func (g *Game) resetRun() {
	g.score = 0
	g.prevScore = 0
	g.level = 0
	g.speed = g.cfg.Obstacles.BaseSpeed
	g.interval = g.diff.SpawnInterval(0)
	g.tickCount = 0
	g.legFrame = 0
	g.puffs = g.puffs[:0]
	g.char.Reset()
	g.obstacles.Reset(g.baseSeed + g.runs)
}

func (g *Game) addPuff(x, y float64) {
	g.puffs = append(g.puffs, puff{x: x, y: y, ttl: puffTTL})
}

func (g *Game) updatePuffs(dt time.Duration) {
	retained := g.puffs[:0]
	for _, p := range g.puffs {
		p.ttl -= dt
		if p.ttl > 0 {
			retained = append(retained, p)
		}
	}
	g.puffs = retained
}

// State returns the current session state without advancing it.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: int(g.score),
		Best:  g.best,
		Level: g.level,
	}
}

// Board returns the session leaderboard.
func (g *Game) Board() *Leaderboard {
	return g.board
}
