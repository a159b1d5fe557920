package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/party"
	"github.com/vovakirdan/elequad/internal/sim"
)

// holdWindow is how long one key event counts as "held". Terminals only
// deliver presses (plus autorepeat), so holds are synthesized: each
// event re-stamps the deadline, and the key reads as held until it
// passes without a repeat.
const holdWindow = 200 * time.Millisecond

// reservedKeys are session-level keys that actor bindings may not claim.
var reservedKeys = map[string]bool{
	"ctrl+c": true,
	"q":      true,
	"p":      true,
	"r":      true,
	"esc":    true,
	"enter":  true,
}

// actorButton is one resolved binding: which actor, which button.
type actorButton struct {
	actor  party.ActorID
	button sim.Button
}

// Keymap resolves raw terminal key names to per-actor buttons. All four
// actors are driven from one keyboard, so every key maps to at most one
// (actor, button) pair.
type Keymap struct {
	byKey map[string]actorButton
}

// NewKeymap builds the key table from the per-actor binding config.
// Duplicate keys and keys colliding with session controls are rejected.
func NewKeymap(bindings []config.BindingConfig) (*Keymap, error) {
	km := &Keymap{byKey: make(map[string]actorButton)}

	for _, b := range bindings {
		id := party.ActorID(b.Actor)
		if !id.Valid() {
			return nil, fmt.Errorf("tui: binding for invalid actor %d", b.Actor)
		}
		pairs := []struct {
			key    string
			button sim.Button
		}{
			{b.Left, sim.ButtonLeft},
			{b.Right, sim.ButtonRight},
			{b.Jump, sim.ButtonJump},
			{b.Action, sim.ButtonAction},
		}
		for _, p := range pairs {
			if p.key == "" {
				// An unbound button is fine; Wind has no action key.
				continue
			}
			if reservedKeys[p.key] {
				return nil, fmt.Errorf("tui: key %q is reserved for session controls", p.key)
			}
			if prev, taken := km.byKey[p.key]; taken {
				return nil, fmt.Errorf("tui: key %q bound to both actor %d and actor %d", p.key, prev.actor, id)
			}
			km.byKey[p.key] = actorButton{actor: id, button: p.button}
		}
	}
	return km, nil
}

// Lookup resolves a key name to its actor button.
func (km *Keymap) Lookup(key string) (actorButton, bool) {
	ab, ok := km.byKey[key]
	return ab, ok
}

// Keys returns every bound key name.
func (km *Keymap) Keys() []string {
	keys := make([]string, 0, len(km.byKey))
	for k := range km.byKey {
		keys = append(keys, k)
	}
	return keys
}

// sessionAction maps a key to a session-level action.
func sessionAction(key string) core.Action {
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionReset
	case "enter":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// keyState synthesizes hold-state and fresh presses from key events.
type keyState struct {
	heldUntil map[string]time.Time
}

func newKeyState() *keyState {
	return &keyState{heldUntil: make(map[string]time.Time)}
}

// observe records a key event and reports whether it is a fresh press.
// Autorepeat events of a key still inside the hold window only refresh
// the deadline; those never feed the double-tap detector.
func (k *keyState) observe(key string, now time.Time) bool {
	fresh := !now.Before(k.heldUntil[key])
	k.heldUntil[key] = now.Add(holdWindow)
	return fresh
}

// held reports whether the key currently reads as held.
func (k *keyState) held(key string, now time.Time) bool {
	return now.Before(k.heldUntil[key])
}

// reset drops all synthesized holds.
func (k *keyState) reset() {
	for key := range k.heldUntil {
		delete(k.heldUntil, key)
	}
}

// setButton marks one button as held in a controls snapshot.
func setButton(c *sim.Controls, b sim.Button) {
	switch b {
	case sim.ButtonLeft:
		c.Left = true
	case sim.ButtonRight:
		c.Right = true
	case sim.ButtonJump:
		c.Jump = true
	case sim.ButtonAction:
		c.Action = true
	}
}
