// Package level provides the shared tile grid: a closed tile alphabet,
// pure semantics resolvers (solid/liquid/hazard classification per actor),
// and level loading from built-in maps or YAML files.
package level

import "github.com/vovakirdan/elequad/internal/party"

// Tile is one cell of the level grid, identified by a symbol from a
// closed alphabet. The resolver functions below are the single source of
// truth for tile behavior; collision, hazard, liquid and rendering logic
// all consume them instead of matching symbols directly.
type Tile rune

const (
	TileEmpty      Tile = ' ' // Traversable air
	TileWall       Tile = '#' // Permanently solid
	TilePoison     Tile = '!' // Hazard pool, lethal to every actor
	TileDarkHole   Tile = 'o' // Dark hole, lethal to every actor, floodable
	TileWater      Tile = '~' // Plain water, liquid for every actor
	TileEmberPool  Tile = 'F' // Liquid for Fire, hazard for the rest
	TileSpringPool Tile = 'W' // Liquid for Water, hazard for the rest
	TileMudPool    Tile = 'E' // Liquid for Earth, hazard for the rest
	TileMistPool   Tile = 'A' // Liquid for Wind, hazard for the rest
	TilePlate      Tile = 'p' // Pressure plate, latches once stood on
	TileDoor       Tile = 'D' // Gated door, solid only while closed
	TileBarrier    Tile = 'x' // Breakable barrier
	TileEarthPlat  Tile = 'e' // Temporary earth platform, solid, breakable
	TileGate1      Tile = '1' // Exit gate for actor 1
	TileGate2      Tile = '2' // Exit gate for actor 2
	TileGate3      Tile = '3' // Exit gate for actor 3
	TileGate4      Tile = '4' // Exit gate for actor 4
)

// Valid reports whether the symbol belongs to the tile alphabet.
func (t Tile) Valid() bool {
	switch t {
	case TileEmpty, TileWall, TilePoison, TileDarkHole, TileWater,
		TileEmberPool, TileSpringPool, TileMudPool, TileMistPool,
		TilePlate, TileDoor, TileBarrier, TileEarthPlat,
		TileGate1, TileGate2, TileGate3, TileGate4:
		return true
	}
	return false
}

// IsSolid reports whether the tile blocks movement. The gated door is
// solid only while closed; everything else ignores the door state.
func IsSolid(t Tile, doorOpen bool) bool {
	switch t {
	case TileWall, TileBarrier, TileEarthPlat:
		return true
	case TileDoor:
		return !doorOpen
	}
	return false
}

// poolOwner returns the one actor a colored pool is safe for,
// or 0 if the tile is not a colored pool.
func poolOwner(t Tile) party.ActorID {
	switch t {
	case TileEmberPool:
		return party.Actor1
	case TileSpringPool:
		return party.Actor2
	case TileMudPool:
		return party.Actor3
	case TileMistPool:
		return party.Actor4
	}
	return 0
}

// IsLiquidFor reports whether the tile behaves as liquid (swim physics)
// for the given actor. Plain water is liquid for everyone; each colored
// pool is liquid for exactly its designated owner.
func IsLiquidFor(t Tile, id party.ActorID) bool {
	if t == TileWater {
		return true
	}
	return poolOwner(t) == id && id != 0
}

// IsHazardFor reports whether touching the tile respawns the given actor.
// Poison and dark holes are lethal to everyone; a colored pool is lethal
// to every actor except its owner. For colored pools exactly one of
// liquid/hazard holds per actor, never both.
func IsHazardFor(t Tile, id party.ActorID) bool {
	switch t {
	case TilePoison, TileDarkHole:
		return true
	}
	owner := poolOwner(t)
	return owner != 0 && owner != id
}

// IsBreakable reports whether the Fire ability can clear the tile.
func IsBreakable(t Tile) bool {
	return t == TileBarrier || t == TileEarthPlat
}

// AcceptsPlatform reports whether the Earth ability may convert the tile
// into a temporary platform.
func AcceptsPlatform(t Tile) bool {
	switch t {
	case TileEmpty, TileDarkHole, TileWater,
		TileEmberPool, TileSpringPool, TileMudPool, TileMistPool:
		return true
	}
	return false
}

// GateOwner returns the actor whose exit this gate tile is, or 0 if the
// tile is not a gate.
func GateOwner(t Tile) party.ActorID {
	switch t {
	case TileGate1:
		return party.Actor1
	case TileGate2:
		return party.Actor2
	case TileGate3:
		return party.Actor3
	case TileGate4:
		return party.Actor4
	}
	return 0
}
