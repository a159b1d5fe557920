package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/level"
)

// ms converts a config millisecond count to a duration.
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// fireBreak clears breakable tiles from a small fixed candidate set: one
// tile ahead in the facing direction, the actor's own tile, and the
// tiles directly above and below it. A broken earth platform is also
// dropped from the platform registry so its later expiry cannot re-clear
// the tile or double-fire a crumble. Returns true if anything broke.
// There is no cooldown; the candidate set itself bounds the effect.
func (s *Sim) fireBreak(a *Actor) bool {
	tx := level.WorldToTile(a.Pos.X)
	ty := level.WorldToTile(a.Pos.Y)
	candidates := [4]level.Coord{
		{X: tx + a.Facing, Y: ty},
		{X: tx, Y: ty},
		{X: tx, Y: ty - 1},
		{X: tx, Y: ty + 1},
	}

	broke := false
	for _, c := range candidates {
		t := s.Level.At(c.X, c.Y)
		if !level.IsBreakable(t) {
			continue
		}
		s.Level.Set(c.X, c.Y, level.TileEmpty)
		if t == level.TileEarthPlat {
			s.Platforms.Remove(c)
		}
		broke = true
	}
	return broke
}

// waterFlood converts connected dark holes to plain water. Seeds are the
// dark-hole tiles in the 3x3 neighborhood centered on the actor; from
// there the fill walks 8-connected neighbors without distance limit,
// bounded only by the conversion cap so it terminates on any map.
// Returns the number of tiles converted (zero means no seed was found).
func (s *Sim) waterFlood(a *Actor) int {
	tx := level.WorldToTile(a.Pos.X)
	ty := level.WorldToTile(a.Pos.Y)

	var queue []level.Coord
	seen := make(map[level.Coord]bool)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := level.Coord{X: tx + dx, Y: ty + dy}
			if s.Level.At(c.X, c.Y) == level.TileDarkHole && !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}

	converted := 0
	limit := s.cfg.Abilities.FloodCap
	for len(queue) > 0 && converted < limit {
		c := queue[0]
		queue = queue[1:]
		if s.Level.At(c.X, c.Y) != level.TileDarkHole {
			continue
		}
		s.Level.Set(c.X, c.Y, level.TileWater)
		converted++

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := level.Coord{X: c.X + dx, Y: c.Y + dy}
				if s.Level.At(n.X, n.Y) == level.TileDarkHole && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return converted
}

// earthPlace converts the tile beneath the actor's feet (or, failing
// that, the tile one step ahead at the same height) into a temporary
// earth platform. The cooldown arms only on successful placement; a
// failed attempt costs nothing. Returns true on success.
func (s *Sim) earthPlace(a *Actor, now time.Time) bool {
	if now.Before(a.AbilityReady) {
		return false
	}

	tx := level.WorldToTile(a.Pos.X)
	ty := level.WorldToTile(a.FeetY())

	target := level.Coord{X: tx, Y: ty}
	if !level.AcceptsPlatform(s.Level.At(target.X, target.Y)) {
		target = level.Coord{X: tx + a.Facing, Y: ty}
		if !level.AcceptsPlatform(s.Level.At(target.X, target.Y)) {
			return false
		}
	}

	s.Level.Set(target.X, target.Y, level.TileEarthPlat)
	s.Platforms.Place(s.Level, target, now.Add(ms(s.cfg.Abilities.PlatformLifetimeMS)))
	a.AbilityReady = now.Add(ms(s.cfg.Abilities.EarthCooldownMS))
	return true
}

// windDash enters the dash state from a double-tap on one of the three
// movement keys. The direction unions the triggering key's axis with the
// instantaneous hold-state of all three keys, normalized; a zero vector
// falls back to the current facing with no vertical component. Taps
// arriving while dashing or on cooldown are discarded, never queued.
func (s *Sim) windDash(a *Actor, taps []Button, c Controls, now time.Time) bool {
	if len(taps) == 0 || a.Dashing || now.Before(a.DashReady) {
		return false
	}

	var trigger Button
	found := false
	for _, b := range taps {
		if b == ButtonLeft || b == ButtonRight || b == ButtonJump {
			trigger = b
			found = true
			break
		}
	}
	if !found {
		return false
	}

	left := c.Left || trigger == ButtonLeft
	right := c.Right || trigger == ButtonRight
	up := c.Jump || trigger == ButtonJump

	var dx, dy float64
	if left {
		dx -= 1
	}
	if right {
		dx += 1
	}
	if up {
		dy = -1
	}

	mag := math.Hypot(dx, dy)
	if mag == 0 {
		dx, dy, mag = float64(a.Facing), 0, 1
	}

	speed := s.cfg.Abilities.DashSpeed
	a.Vel = core.Vec{X: dx / mag * speed, Y: dy / mag * speed}
	a.Dashing = true
	a.DashEnds = now.Add(ms(s.cfg.Abilities.DashDurationMS))
	a.DashReady = now.Add(ms(s.cfg.Abilities.DashCooldownMS))
	return true
}
