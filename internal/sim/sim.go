// Package sim implements the co-operative four-actor platformer
// simulation: deterministic fixed-step physics over a mutable tile grid,
// per-element abilities, pressure plates, hazards and the win condition.
// The package is pure state-in/state-out; the caller owns the clock and
// the input devices.
package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/party"
)

// MaxStep caps the time step fed into the physics. A stalled caller
// (debugger, suspended terminal) produces one slightly-slow frame
// instead of a tunnelling teleport.
const MaxStep = 1.0 / 30

// footstepInterval spaces the footstep cues of a running actor.
const footstepInterval = 280 * time.Millisecond

// Sim is one running session: a level instance, the four actors and the
// plate/platform bookkeeping. It is not safe for concurrent use; the
// driving loop owns it.
type Sim struct {
	Level     *level.Level
	Actors    [party.ActorCount]*Actor
	Plates    *PlateSet
	Platforms *PlatformRegistry

	// Deaths counts hazard respawns across all actors since the last
	// reset. It is a shared score, not a failure state.
	Deaths int

	cfg        config.Config
	pauseDepth int
	won        bool
	events     []Event
}

// New creates a session on the given level. The level is taken over by
// the session: abilities edit its tiles in place.
func New(l *level.Level, cfg config.Config) *Sim {
	s := &Sim{
		Level:     l,
		Plates:    NewPlateSet(l),
		Platforms: NewPlatformRegistry(cfg.Abilities.PlatformCap),
		cfg:       cfg,
	}
	for i, id := range party.AllActors {
		s.Actors[i] = newActor(id, l.Spawn(id), cfg.Abilities.AirJumps[int(id)])
	}
	return s
}

// Actor returns the state of one actor.
func (s *Sim) Actor(id party.ActorID) *Actor {
	return s.Actors[int(id)-1]
}

// Won reports whether the session has been won.
func (s *Sim) Won() bool {
	return s.won
}

// Paused reports whether at least one pause request is outstanding.
func (s *Sim) Paused() bool {
	return s.pauseDepth > 0
}

// PushPause adds one pause request. Pause is re-entrant: overlapping
// requesters (user toggle, focus loss, menu overlay) stack, and the
// simulation resumes only when every one of them has popped.
func (s *Sim) PushPause() {
	s.pauseDepth++
}

// PopPause removes one pause request. Extra pops are ignored.
func (s *Sim) PopPause() {
	if s.pauseDepth > 0 {
		s.pauseDepth--
	}
}

// Reset restores the session to its initial state: pristine tiles,
// unlatched plates, no platforms, zero deaths, actors at their spawns.
// The pause stack is left alone so a menu-driven reset stays paused.
func (s *Sim) Reset() {
	s.Level.Reset()
	s.Plates.Reset()
	s.Platforms.Reset()
	s.Deaths = 0
	s.won = false
	for _, a := range s.Actors {
		a.resetForRound()
	}
}

// Step advances the whole session by dt seconds. While paused or after a
// win the world is left untouched and the report says so. Actors update
// in fixed ID order, so a frame's outcome depends only on prior state
// and this tick's inputs.
func (s *Sim) Step(in Inputs, now time.Time, dt float64) Report {
	if s.pauseDepth > 0 {
		return Report{Paused: true, Won: s.won, Deaths: s.Deaths}
	}
	if s.won {
		return Report{Won: true, Deaths: s.Deaths}
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	if dt < 0 {
		dt = 0
	}
	s.events = s.events[:0]

	// Door state is derived from live plate occupancy before anyone
	// moves, so every actor sees the same door this frame.
	s.evaluateDoor()

	for _, a := range s.Actors {
		s.updateActor(a, in, now, dt)
	}

	for i := s.Platforms.Sweep(s.Level, now); i > 0; i-- {
		s.emit(CueCrumble, 0)
	}

	if !s.won && s.Plates.AllPressed() && s.allReachedExits() {
		s.won = true
		s.emit(CueWin, 0)
	}

	return Report{
		Events: append([]Event(nil), s.events...),
		Won:    s.won,
		Deaths: s.Deaths,
	}
}

// evaluateDoor opens the doors while at least two actors occupy plate
// tiles. Occupancy uses the same center-or-feet samples as the latch
// pass below: a plate is a walkable floor tile, so a grounded stander
// registers through the feet sample, and an actor overlapping a plate
// at body height registers through the center. Unlike the latch set
// this is transient: step off and the doors close again.
func (s *Sim) evaluateDoor() {
	standing := 0
	for _, a := range s.Actors {
		center := s.centerCoord(a)
		feet := s.feetCoord(a)
		if s.Level.At(center.X, center.Y) == level.TilePlate ||
			s.Level.At(feet.X, feet.Y) == level.TilePlate {
			standing++
		}
	}
	s.Level.DoorOpen = standing >= 2
}

func (s *Sim) updateActor(a *Actor, in Inputs, now time.Time, dt float64) {
	c := in.Controls(a.ID)
	actionEdge := c.Action && !a.prev.Action

	// Liquid state comes from the tile under the hitbox center.
	a.InLiquid = level.IsLiquidFor(s.Level.At(s.centerCoord(a).X, s.centerCoord(a).Y), a.ID)

	if a.Dashing && !now.Before(a.DashEnds) {
		a.Dashing = false
	}
	if a.Element == party.ElementWind {
		if s.windDash(a, in.Taps(a.ID), c, now) {
			s.emit(CueWindDash, a.ID)
		}
	}

	if integrate(s.Level, a, c, dt, s.cfg.Physics) {
		s.emit(CueJump, a.ID)
	}

	if a.Grounded && math.Abs(a.Vel.X) > s.cfg.Physics.StopThreshold && !now.Before(a.NextFootstep) {
		s.emit(CueFootstep, a.ID)
		a.NextFootstep = now.Add(footstepInterval)
	}

	// Plates latch from either the center or the feet sample, so both a
	// plate at body height and one underfoot register.
	center := s.centerCoord(a)
	feet := s.feetCoord(a)
	for _, at := range [2]level.Coord{center, feet} {
		if s.Level.At(at.X, at.Y) == level.TilePlate && s.Plates.Press(at, now) {
			s.emit(CuePlatePress, a.ID)
		}
	}

	// Hazard contact teleports home and bumps the shared counter. Both
	// samples count: standing on poison hurts as much as sinking in it.
	if level.IsHazardFor(s.Level.At(center.X, center.Y), a.ID) ||
		level.IsHazardFor(s.Level.At(feet.X, feet.Y), a.ID) {
		a.respawn()
		s.Deaths++
		s.emit(CueRespawn, a.ID)
	}

	if actionEdge {
		switch a.Element {
		case party.ElementFire:
			if s.fireBreak(a) {
				s.emit(CueFireBreak, a.ID)
			}
		case party.ElementWater:
			if s.waterFlood(a) > 0 {
				s.emit(CueWaterSplash, a.ID)
			}
		case party.ElementEarth:
			if s.earthPlace(a, now) {
				s.emit(CueEarthThud, a.ID)
			}
		case party.ElementWind:
			// Dash arms from double-taps, not the action button.
		}
	}

	// Exit occupancy is re-evaluated every frame from hitbox overlap
	// with the actor's own gate tiles; stepping away un-reaches it.
	a.ReachedExit = false
	b := a.Bounds()
	for _, g := range s.Level.Gates(a.ID) {
		if b.Intersects(g) {
			a.ReachedExit = true
			break
		}
	}

	a.prev = c
}

// centerCoord returns the tile under the actor's hitbox center.
func (s *Sim) centerCoord(a *Actor) level.Coord {
	return level.Coord{X: level.WorldToTile(a.Pos.X), Y: level.WorldToTile(a.Pos.Y)}
}

// feetCoord returns the tile just below the actor's hitbox.
func (s *Sim) feetCoord(a *Actor) level.Coord {
	return level.Coord{X: level.WorldToTile(a.Pos.X), Y: level.WorldToTile(a.FeetY())}
}

func (s *Sim) allReachedExits() bool {
	for _, a := range s.Actors {
		if !a.ReachedExit {
			return false
		}
	}
	return true
}

func (s *Sim) emit(c Cue, id party.ActorID) {
	s.events = append(s.events, Event{Cue: c, Actor: id})
}
