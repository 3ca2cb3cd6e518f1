// Package audio synthesizes the game's sound cues with beep. No audio
// files are shipped; every cue is generated from oscillators on demand.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pdudko/runcat/internal/events"
)

const sampleRate = beep.SampleRate(44100)

// Player plays synthesized cues for gameplay events. When no audio
// backend is available it stays silent and every cue becomes a no-op.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	ready   bool
}

// NewPlayer creates a player with sound enabled but no speaker yet.
func NewPlayer() *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Init opens the speaker and starts the mixer. Safe to call twice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// SetEnabled turns cue playback on or off.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

// Enabled reports whether cue playback is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Attach subscribes the player to the simulation's event bus.
func (p *Player) Attach(bus *events.Bus) {
	bus.Tap(func(e events.Event) {
		switch e {
		case events.Jumped:
			p.PlayJump()
		case events.Landed:
			p.PlayLand()
		case events.Collision:
			p.PlayCrash()
		}
	})
}

// PlayJump plays the rising jump blip.
func (p *Player) PlayJump() {
	p.play(JumpCue(sampleRate))
}

// PlayLand plays the landing thud.
func (p *Player) PlayLand() {
	p.play(LandCue(sampleRate))
}

// PlayCrash plays the collision crash.
func (p *Player) PlayCrash() {
	p.play(CrashCue(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || !p.enabled {
		return
	}

	// The speaker streams the mixer from its own goroutine.
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself has no close in beep;
// clearing the streamers is enough to stop playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
