package config

import "time"

// Difficulty computes progression parameters from the current score: how
// often obstacles spawn, which level a score sits in, and how fast obstacles
// move at that level.
type Difficulty struct {
	spawn SpawnConfig
	score ScoreConfig
}

// NewDifficulty creates a difficulty calculator from the spawn and score
// sections of the config.
func NewDifficulty(spawn SpawnConfig, score ScoreConfig) *Difficulty {
	return &Difficulty{spawn: spawn, score: score}
}

// SpawnInterval returns the obstacle spawn interval for a score. The interval
// shrinks linearly with score down to the configured floor.
func (d *Difficulty) SpawnInterval(score int) time.Duration {
	div := d.spawn.ShrinkDivisor
	if div <= 0 {
		div = 1 // Prevent division by zero
	}
	ms := d.spawn.InitialIntervalMs - score/div
	if ms < d.spawn.MinIntervalMs {
		ms = d.spawn.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Level returns the difficulty level for a score. Levels advance every
// LevelEvery points, starting at level 0.
func (d *Difficulty) Level(score int) int {
	if d.score.LevelEvery <= 0 {
		return 0
	}
	return score / d.score.LevelEvery
}

// LevelUps returns how many level boundaries lie between two scores. A single
// oversized tick can cross more than one boundary; each crossing counts.
func (d *Difficulty) LevelUps(prevScore, curScore int) int {
	ups := d.Level(curScore) - d.Level(prevScore)
	if ups < 0 {
		return 0
	}
	return ups
}

// Speed returns the obstacle speed for a level, in world units per frame at
// the reference rate.
func (d *Difficulty) Speed(baseSpeed float64, level int) float64 {
	return baseSpeed + float64(level)*d.score.SpeedIncrement
}
