package events

import "testing"

func TestBusSubscribe(t *testing.T) {
	bus := NewBus()

	jumps := 0
	lands := 0
	bus.Subscribe(Jumped, func() { jumps++ })
	bus.Subscribe(Jumped, func() { jumps++ })
	bus.Subscribe(Landed, func() { lands++ })

	bus.Publish(Jumped)

	if jumps != 2 {
		t.Errorf("Expected both Jumped handlers to fire, got %d calls", jumps)
	}
	if lands != 0 {
		t.Errorf("Landed handler should not fire on Jumped, got %d calls", lands)
	}

	bus.Publish(Landed)
	if lands != 1 {
		t.Errorf("Expected 1 Landed call, got %d", lands)
	}
}

func TestBusTap(t *testing.T) {
	bus := NewBus()

	var seen []Event
	bus.Tap(func(e Event) { seen = append(seen, e) })

	bus.Publish(Jumped)
	bus.Publish(Collision)
	bus.Publish(Landed)

	want := []Event{Jumped, Collision, Landed}
	if len(seen) != len(want) {
		t.Fatalf("Tap saw %d events, want %d", len(seen), len(want))
	}
	for i, e := range want {
		if seen[i] != e {
			t.Errorf("Tap event %d = %q, want %q", i, seen[i], e)
		}
	}
}

func TestBusNilSafe(t *testing.T) {
	// Publishing with no bus attached must be a no-op, not a panic.
	var bus *Bus
	bus.Publish(Collision)

	b := NewBus()
	b.Subscribe(Jumped, nil)
	b.Tap(nil)
	b.Publish(Jumped)
}
