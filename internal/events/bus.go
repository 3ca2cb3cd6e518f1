// Package events provides the signal bus the simulation publishes to.
// The core emits named, payload-free events; presentation collaborators
// (audio cues, haptic flash, logging) subscribe independently, so the
// simulation never knows who is listening.
package events

// Event identifies a gameplay signal emitted by the simulation core.
type Event string

const (
	// Jumped fires when a jump input is accepted and the character leaves the ground.
	Jumped Event = "jumped"
	// Landed fires when an in-progress jump returns to the ground baseline.
	Landed Event = "landed"
	// Collision fires once when the character overlaps an obstacle, ending the run.
	Collision Event = "collision"
)

// Handler is a subscriber callback. Handlers run synchronously inside the
// simulation tick and must not block.
type Handler func()

// Bus is a synchronous publish/subscribe registry. The game loop is the only
// publisher and everything runs on its single logical thread, so no locking
// is involved; handlers fire in subscription order.
type Bus struct {
	handlers map[Event][]Handler
	taps     []func(Event)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Event][]Handler),
	}
}

// Subscribe registers a handler for a single event.
func (b *Bus) Subscribe(e Event, h Handler) {
	if h == nil {
		return
	}
	b.handlers[e] = append(b.handlers[e], h)
}

// Tap registers a handler that receives every published event. Used by
// collaborators that switch on the event themselves, such as the audio
// cue player and the gameplay logger.
func (b *Bus) Tap(fn func(Event)) {
	if fn == nil {
		return
	}
	b.taps = append(b.taps, fn)
}

// Publish delivers an event to all matching subscribers. Publishing on a
// nil bus is a no-op, which lets the simulation run without any listeners
// attached (the default in tests).
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, h := range b.handlers[e] {
		h()
	}
	for _, fn := range b.taps {
		fn(e)
	}
}
