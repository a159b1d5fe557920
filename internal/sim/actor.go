package sim

import (
	"time"

	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/party"
)

// Actor half-extents in world units. The hitbox is slightly narrower and
// shorter than a tile so actors fit through one-tile gaps.
const (
	actorHalfW = 5.0
	actorHalfH = 7.0
)

// footMargin is how far below the hitbox the feet/ground samples reach.
const footMargin = 2.0

// Actor is the per-character kinematic and ability state machine.
// Actors are created once per session and mutated every simulation step;
// hazard contact repositions them to their spawn, it never destroys them.
type Actor struct {
	ID      party.ActorID
	Element party.Element

	Spawn core.Vec
	Pos   core.Vec // Center of the hitbox
	Vel   core.Vec

	Facing   int // ±1, last horizontal input direction
	Grounded bool
	// JumpLock prevents the held jump key from re-triggering a launch
	// every frame. It is deliberately a level-held lock rather than a
	// strict rising edge: releasing jump mid-air and re-pressing before
	// landing buffers a bunny hop.
	JumpLock bool

	Alive       bool
	ReachedExit bool
	InLiquid    bool

	// Air-jump budget. Every shipped actor has a maximum of zero, so the
	// air-jump branch is an extension point rather than live behavior.
	AirJumpMax   int
	AirJumpsLeft int

	// Dash state, meaningful only for the Wind actor.
	Dashing   bool
	DashEnds  time.Time
	DashReady time.Time

	// Generic ability cooldown, used by Earth.
	AbilityReady time.Time

	// Earliest time the next footstep cue may fire.
	NextFootstep time.Time

	prev Controls // Previous-frame held-state for rising-edge detection
}

// newActor creates an actor at its spawn point.
func newActor(id party.ActorID, spawn core.Vec, airJumpMax int) *Actor {
	return &Actor{
		ID:           id,
		Element:      party.ElementOf(id),
		Spawn:        spawn,
		Pos:          spawn,
		Facing:       1,
		Alive:        true,
		AirJumpMax:   airJumpMax,
		AirJumpsLeft: airJumpMax,
	}
}

// Bounds returns the actor's collision rectangle in world units.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.Pos.X-actorHalfW, a.Pos.Y-actorHalfH, 2*actorHalfW, 2*actorHalfH)
}

// FeetY returns the world y of the ground sample point just below the
// hitbox.
func (a *Actor) FeetY() float64 {
	return a.Pos.Y + actorHalfH + footMargin
}

// respawn teleports the actor back to its spawn point after hazard
// contact. The actor stays alive; only kinematic and dash state resets.
func (a *Actor) respawn() {
	a.Pos = a.Spawn
	a.Vel = core.Vec{}
	a.Grounded = false
	a.JumpLock = false
	a.AirJumpsLeft = a.AirJumpMax
	a.Dashing = false
	a.DashEnds = time.Time{}
}

// resetForRound restores the actor to its initial session state.
func (a *Actor) resetForRound() {
	a.respawn()
	a.Facing = 1
	a.ReachedExit = false
	a.InLiquid = false
	a.DashReady = time.Time{}
	a.AbilityReady = time.Time{}
	a.NextFootstep = time.Time{}
	a.prev = Controls{}
}
