package sim

import (
	"math"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/level"
)

// collisionEpsilon keeps a snapped actor strictly outside the solid tile
// so the next frame's samples do not land back inside it.
const collisionEpsilon = 0.01

// applyControls integrates input and gravity into the actor's velocity
// for one step. It does not move the actor; collision happens afterwards
// in moveHorizontal/moveVertical. Returns true if a jump launched.
func applyControls(a *Actor, c Controls, dt float64, phy config.PhysicsConfig) bool {
	// Horizontal input.
	if c.Left {
		a.Vel.X -= phy.MoveAccel * dt
		a.Facing = -1
	}
	if c.Right {
		a.Vel.X += phy.MoveAccel * dt
		a.Facing = 1
	}
	a.Vel.X = core.ClampF(a.Vel.X, -phy.MaxRunSpeed, phy.MaxRunSpeed)

	// Damping when no direction is held. Ground friction is the
	// strongest, liquid drag sits between it and air drag.
	if !c.Left && !c.Right {
		factor := phy.AirDrag
		switch {
		case a.InLiquid:
			factor = phy.LiquidDrag
		case a.Grounded:
			factor = phy.GroundFriction
		}
		a.Vel.X *= factor
		if math.Abs(a.Vel.X) < phy.StopThreshold {
			a.Vel.X = 0
		}
	}

	// The lock exists exactly while the jump key is held; landing also
	// clears it (see moveVertical).
	if !c.Jump {
		a.JumpLock = false
	}

	if a.InLiquid {
		// Immersion: reduced gravity, upward swim force while jump is
		// held, and a tighter velocity band than in air.
		a.Vel.Y += phy.Gravity * phy.LiquidGravityFactor * dt
		if c.Jump {
			a.Vel.Y -= phy.SwimForce * dt
		}
		a.Vel.Y = core.ClampF(a.Vel.Y, -phy.LiquidMaxRise, phy.LiquidMaxSink)
		return false
	}

	a.Vel.Y += phy.Gravity * dt
	if a.Vel.Y > phy.MaxFallSpeed {
		a.Vel.Y = phy.MaxFallSpeed
	}

	if c.Jump && !a.JumpLock {
		if a.Grounded {
			a.Vel.Y = -phy.JumpSpeed
			a.JumpLock = true
			a.Grounded = false
			return true
		}
		if a.AirJumpsLeft > 0 {
			a.Vel.Y = -phy.JumpSpeed * phy.AirJumpFactor
			a.AirJumpsLeft--
			a.JumpLock = true
			return true
		}
	}
	return false
}

// solidSpan reports whether any tile in the inclusive column range
// [tx0, tx1] of row ty is solid under the current door state.
func solidSpan(l *level.Level, tx0, tx1, ty int) bool {
	for tx := tx0; tx <= tx1; tx++ {
		if level.IsSolid(l.At(tx, ty), l.DoorOpen) {
			return true
		}
	}
	return false
}

// solidColumn reports whether any tile in the inclusive row range
// [ty0, ty1] of column tx is solid under the current door state.
func solidColumn(l *level.Level, tx, ty0, ty1 int) bool {
	for ty := ty0; ty <= ty1; ty++ {
		if level.IsSolid(l.At(tx, ty), l.DoorOpen) {
			return true
		}
	}
	return false
}

// moveHorizontal projects the new x from velocity and resolves collision
// against the grid. The leading edge is swept over every tile column it
// crosses this step, so a step larger than one tile cannot skip a thin
// wall; on contact the actor snaps to the tile boundary and the
// horizontal velocity zeroes. Tiles are only read, never written.
func moveHorizontal(l *level.Level, a *Actor, dt float64) {
	if a.Vel.X == 0 {
		return
	}
	newX := a.Pos.X + a.Vel.X*dt
	topTy := level.WorldToTile(a.Pos.Y - actorHalfH)
	botTy := level.WorldToTile(a.Pos.Y + actorHalfH - 1)

	if a.Vel.X > 0 {
		start := level.WorldToTile(a.Pos.X + actorHalfW)
		end := level.WorldToTile(newX + actorHalfW)
		for tx := start; tx <= end; tx++ {
			if !solidColumn(l, tx, topTy, botTy) {
				continue
			}
			newX = float64(tx)*level.CellSize - actorHalfW - collisionEpsilon
			a.Vel.X = 0
			break
		}
	} else {
		start := level.WorldToTile(a.Pos.X - actorHalfW)
		end := level.WorldToTile(newX - actorHalfW)
		for tx := start; tx >= end; tx-- {
			if !solidColumn(l, tx, topTy, botTy) {
				continue
			}
			newX = float64(tx+1)*level.CellSize + actorHalfW + collisionEpsilon
			a.Vel.X = 0
			break
		}
	}
	a.Pos.X = newX
}

// moveVertical projects the new y and resolves collision, sweeping the
// moving edge over every tile row it crosses this step: at terminal
// fall speed one clamped step covers more than one tile, and only the
// sweep keeps a one-tile floor solid. Landing on a solid sets grounded,
// clears the jump lock and refills the air-jump budget; hitting a
// ceiling only zeroes the velocity.
func moveVertical(l *level.Level, a *Actor, dt float64) {
	newY := a.Pos.Y + a.Vel.Y*dt
	leftTx := level.WorldToTile(a.Pos.X - actorHalfW)
	rightTx := level.WorldToTile(a.Pos.X + actorHalfW - 1)

	// Grounded is re-derived every step: walking off a ledge drops the
	// flag because the landing branch below never fires.
	a.Grounded = false

	if a.Vel.Y >= 0 {
		start := level.WorldToTile(a.Pos.Y + actorHalfH)
		end := level.WorldToTile(newY + actorHalfH)
		for ty := start; ty <= end; ty++ {
			if !solidSpan(l, leftTx, rightTx, ty) {
				continue
			}
			newY = float64(ty)*level.CellSize - actorHalfH - collisionEpsilon
			a.Vel.Y = 0
			a.Grounded = true
			a.JumpLock = false
			a.AirJumpsLeft = a.AirJumpMax
			break
		}
	} else {
		start := level.WorldToTile(a.Pos.Y - actorHalfH)
		end := level.WorldToTile(newY - actorHalfH)
		for ty := start; ty >= end; ty-- {
			if !solidSpan(l, leftTx, rightTx, ty) {
				continue
			}
			newY = float64(ty+1)*level.CellSize + actorHalfH + collisionEpsilon
			a.Vel.Y = 0
			break
		}
	}
	a.Pos.Y = newY
}

// integrate advances one actor against the grid for one time step:
// input and gravity, then swept axis-separated collision, horizontal
// first. While dashing, input, gravity and damping are suspended and the
// dash velocity carries straight into collision resolution.
func integrate(l *level.Level, a *Actor, c Controls, dt float64, phy config.PhysicsConfig) (jumped bool) {
	if !a.Dashing {
		jumped = applyControls(a, c, dt, phy)
	}
	moveHorizontal(l, a, dt)
	moveVertical(l, a, dt)
	return jumped
}
