package tui

import (
	"github.com/pdudko/runcat/internal/events"
)

// flashFrames is how many frames the crash flash lasts.
const flashFrames = 4

// Flash is the terminal stand-in for haptic feedback: a short reverse-video
// burst when the run ends in a crash. All methods are nil-safe so sessions
// without haptics can simply carry a nil Flash.
type Flash struct {
	enabled   bool
	remaining int
}

// NewFlash creates an enabled flash.
func NewFlash() *Flash {
	return &Flash{enabled: true}
}

// Attach subscribes the flash to the simulation's event bus.
func (f *Flash) Attach(bus *events.Bus) {
	if f == nil {
		return
	}
	bus.Subscribe(events.Collision, f.Trigger)
}

// Trigger arms the burst, if enabled.
func (f *Flash) Trigger() {
	if f == nil || !f.enabled {
		return
	}
	f.remaining = flashFrames
}

// Tick decays the burst by one frame.
func (f *Flash) Tick() {
	if f == nil || f.remaining == 0 {
		return
	}
	f.remaining--
}

// Active reports whether the current frame should render inverted.
func (f *Flash) Active() bool {
	return f != nil && f.remaining > 0
}

// SetEnabled turns the burst on or off. Disabling kills an active burst.
func (f *Flash) SetEnabled(on bool) {
	if f == nil {
		return
	}
	f.enabled = on
	if !on {
		f.remaining = 0
	}
}

// Enabled reports whether the burst arms on collisions.
func (f *Flash) Enabled() bool {
	return f != nil && f.enabled
}
