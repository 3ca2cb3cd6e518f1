// Package runner implements the endless runner game: a cat auto-runs along
// the ground and jumps over crates scrolling in from the right. One collision
// ends the run.
package runner

import (
	"github.com/pdudko/runcat/internal/config"
	"github.com/pdudko/runcat/internal/core"
	"github.com/pdudko/runcat/internal/events"
)

// Character is the player avatar. It only moves vertically: jumps arc against
// constant gravity while the world scrolls past. Vertical position is height
// above the ground baseline in world units (0 = resting on the ground).
//
// Gravity and jump power apply once per simulation tick and are not scaled by
// frame timing; only obstacle scrolling is delta-time based.
type Character struct {
	x      float64
	y      float64
	vel    float64
	width  float64
	height float64

	jumping bool // Set from jump until landing
	coyote  int  // Ticks remaining in which a late jump is still accepted

	phys   config.PhysicsConfig
	bus    *events.Bus
	onLand func(x, y float64)
}

// NewCharacter creates a grounded character at its fixed horizontal position.
func NewCharacter(player config.PlayerConfig, phys config.PhysicsConfig, bus *events.Bus) *Character {
	c := &Character{
		x:      player.X,
		width:  player.Width,
		height: player.Height,
		phys:   phys,
		bus:    bus,
	}
	c.Reset()
	return c
}

// Reset returns the character to grounded rest.
func (c *Character) Reset() {
	c.y = 0
	c.vel = 0
	c.jumping = false
	c.coyote = c.phys.CoyoteTicks
}

// OnLand registers a callback invoked with the character's world coordinates
// each time a jump ends on the ground. Used to spawn the landing dust puff.
func (c *Character) OnLand(fn func(x, y float64)) {
	c.onLand = fn
}

// Jump launches the character if it is grounded or still within the coyote
// grace window. Airborne with the window spent, the call has no effect.
func (c *Character) Jump() {
	if c.jumping && c.coyote == 0 {
		return
	}
	c.vel = c.phys.JumpPower
	c.jumping = true
	c.coyote = 0
	c.bus.Publish(events.Jumped)
}

// Update advances the character by one simulation tick: gravity, integration,
// coyote bookkeeping, and the ground clamp.
func (c *Character) Update() {
	c.vel -= c.phys.Gravity
	if c.vel < -c.phys.MaxFallSpeed {
		c.vel = -c.phys.MaxFallSpeed
	}
	c.y += c.vel

	if c.jumping {
		if c.coyote > 0 {
			c.coyote--
		}
	} else {
		c.coyote = c.phys.CoyoteTicks
	}

	if c.y <= 0 {
		c.y = 0
		c.vel = 0
		if c.jumping {
			c.jumping = false
			c.bus.Publish(events.Landed)
			if c.onLand != nil {
				c.onLand(c.x, c.y)
			}
		}
	}
}

// Grounded reports whether the character rests on the baseline.
func (c *Character) Grounded() bool {
	return !c.jumping
}

// Y returns the height above the ground baseline.
func (c *Character) Y() float64 {
	return c.y
}

// Velocity returns the current vertical velocity, positive upward.
func (c *Character) Velocity() float64 {
	return c.vel
}

// Box returns the collision box in world space.
func (c *Character) Box() core.Box {
	return core.NewBox(c.x, c.y, c.width, c.height)
}
