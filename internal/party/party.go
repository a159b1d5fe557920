// Package party defines the four fixed actor identities of the co-op
// party and tracks remote play sessions. Every actor is bound permanently
// to one element; the binding never changes at runtime.
package party

import "github.com/vovakirdan/elequad/internal/core"

// ActorID identifies one of the four controlled characters (1..4).
type ActorID int

// The four party slots. The mapping to elements is fixed.
const (
	Actor1 ActorID = 1 + iota // Fire
	Actor2                    // Water
	Actor3                    // Earth
	Actor4                    // Wind
)

// ActorCount is the fixed party size.
const ActorCount = 4

// AllActors lists the party in update order.
var AllActors = [ActorCount]ActorID{Actor1, Actor2, Actor3, Actor4}

// Valid reports whether the ID names one of the four party slots.
func (id ActorID) Valid() bool {
	return id >= Actor1 && id <= Actor4
}

// Element is the elemental ability class of an actor.
type Element int

const (
	ElementFire Element = iota
	ElementWater
	ElementEarth
	ElementWind
)

// String returns a human-readable name for the element.
func (e Element) String() string {
	switch e {
	case ElementFire:
		return "Fire"
	case ElementWater:
		return "Water"
	case ElementEarth:
		return "Earth"
	case ElementWind:
		return "Wind"
	default:
		return "Unknown"
	}
}

// ElementOf returns the element permanently bound to an actor identity.
func ElementOf(id ActorID) Element {
	switch id {
	case Actor1:
		return ElementFire
	case Actor2:
		return ElementWater
	case Actor3:
		return ElementEarth
	default:
		return ElementWind
	}
}

// ColorOf returns the display color permanently bound to an actor identity.
func ColorOf(id ActorID) core.Color {
	switch ElementOf(id) {
	case ElementFire:
		return core.ColorBrightRed
	case ElementWater:
		return core.ColorBrightBlue
	case ElementEarth:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightCyan
	}
}

// Glyph returns the sprite rune for an actor.
func Glyph(id ActorID) rune {
	switch ElementOf(id) {
	case ElementFire:
		return '♦'
	case ElementWater:
		return '●'
	case ElementEarth:
		return '■'
	default:
		return '▲'
	}
}
