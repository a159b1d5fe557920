package sim

import (
	"time"

	"github.com/vovakirdan/elequad/internal/party"
)

// Button is one of the four logical per-actor buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonJump
	ButtonAction
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonJump:
		return "Jump"
	case ButtonAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Controls is the held-state of one actor's buttons for one tick.
// The simulation keeps its own previous-frame snapshot per actor and
// derives rising edges from it; callers only report what is held now.
type Controls struct {
	Left   bool
	Right  bool
	Jump   bool
	Action bool
}

// Inputs carries every actor's controls plus the double-tap events that
// occurred this tick. A fresh Inputs is built per tick, so unconsumed
// taps are discarded, never queued.
type Inputs struct {
	ByActor    map[party.ActorID]Controls
	DoubleTaps map[party.ActorID][]Button
}

// NewInputs creates an empty input set.
func NewInputs() Inputs {
	return Inputs{
		ByActor:    make(map[party.ActorID]Controls),
		DoubleTaps: make(map[party.ActorID][]Button),
	}
}

// Controls returns the held-state for an actor, zero if absent.
func (in Inputs) Controls(id party.ActorID) Controls {
	return in.ByActor[id]
}

// Tap records a double-tap event for an actor's button.
func (in *Inputs) Tap(id party.ActorID, b Button) {
	in.DoubleTaps[id] = append(in.DoubleTaps[id], b)
}

// Taps returns the double-tap events recorded for an actor this tick.
func (in Inputs) Taps(id party.ActorID) []Button {
	return in.DoubleTaps[id]
}

// tapKey indexes the double-tap cache by actor and button.
type tapKey struct {
	actor  party.ActorID
	button Button
}

// DoubleTapTracker detects double-taps: two presses of the same button
// within a fixed window. It is a small per-key timestamp cache,
// independent of the held-state snapshotting in the simulation.
type DoubleTapTracker struct {
	window time.Duration
	last   map[tapKey]time.Time
}

// NewDoubleTapTracker creates a tracker with the given tap window.
func NewDoubleTapTracker(window time.Duration) *DoubleTapTracker {
	return &DoubleTapTracker{
		window: window,
		last:   make(map[tapKey]time.Time),
	}
}

// Observe records a press of an actor's button at the given time and
// reports whether it completes a double-tap. A completed double-tap
// clears the cache entry, so a triple press yields exactly one event.
func (t *DoubleTapTracker) Observe(id party.ActorID, b Button, now time.Time) bool {
	k := tapKey{actor: id, button: b}
	prev, ok := t.last[k]
	if ok && now.Sub(prev) <= t.window {
		delete(t.last, k)
		return true
	}
	t.last[k] = now
	return false
}

// Reset clears all cached press timestamps.
func (t *DoubleTapTracker) Reset() {
	for k := range t.last {
		delete(t.last, k)
	}
}
