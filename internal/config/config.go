// Package config provides YAML-based configuration loading and difficulty
// progression for the runner.
package config

// Config contains all tunable parameters for the runner. Values live in
// world units: the simulation space is decoupled from terminal cells.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Score     ScoreConfig     `yaml:"score"`
	Sim       SimConfig       `yaml:"sim"`
}

// WorldConfig defines the logical coordinate space.
type WorldConfig struct {
	Width        float64 `yaml:"width"`         // World width in units
	Height       float64 `yaml:"height"`        // World height in units
	GroundOffset int     `yaml:"ground_offset"` // Ground row distance from the bottom of the screen, in cells
}

// PlayerConfig defines the character's fixed placement and size.
type PlayerConfig struct {
	X      float64 `yaml:"x"`      // Horizontal position, constant while running
	Width  float64 `yaml:"width"`  // Collision box width
	Height float64 `yaml:"height"` // Collision box height
}

// PhysicsConfig defines per-tick jump physics. Gravity and jump power apply
// once per simulation tick regardless of frame timing.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	JumpPower    float64 `yaml:"jump_power"`     // Upward velocity set by a jump
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal falling velocity
	CoyoteTicks  int     `yaml:"coyote_ticks"`   // Grace ticks to jump after leaving the ground
}

// ObstaclesConfig defines obstacle geometry, movement and pooling.
type ObstaclesConfig struct {
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	BaseSpeed   float64 `yaml:"base_speed"`   // Units per frame at the 60fps reference rate
	OffscreenAt float64 `yaml:"offscreen_at"` // X below which an obstacle is recycled
	Capacity    int     `yaml:"capacity"`     // Pool size ceiling
}

// SpawnConfig defines obstacle spawn timing, all durations in milliseconds.
type SpawnConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"` // Spawn interval at score 0
	MinIntervalMs     int `yaml:"min_interval_ms"`     // Interval floor at high scores
	ShrinkDivisor     int `yaml:"shrink_divisor"`      // Interval shrinks by score/divisor ms
	RandomBaseMs      int `yaml:"random_base_ms"`      // Fixed addition to the random delay draw
	MinGapMs          int `yaml:"min_gap_ms"`          // Lower clamp on any drawn delay
}

// ScoreConfig defines score accrual and level progression.
type ScoreConfig struct {
	RatePerSecond   float64 `yaml:"rate_per_second"` // Points earned per second of running
	LevelEvery      int     `yaml:"level_every"`     // Score boundary between levels
	SpeedIncrement  float64 `yaml:"speed_increment"` // Obstacle speed gained per level
	LeaderboardSize int     `yaml:"leaderboard_size"`
}

// SimConfig defines simulation timing limits.
type SimConfig struct {
	MaxStepMs int `yaml:"max_step_ms"` // Clamp on a single tick's elapsed time
}
