package level

import (
	"fmt"
	"math"

	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/party"
)

// CellSize is the edge length of one tile in world units. Actor positions
// and velocities are continuous world coordinates; the grid is indexed by
// flooring world coordinates through WorldToTile.
const CellSize = 16.0

// Coord identifies a tile by grid position.
type Coord struct {
	X, Y int
}

// Level is a rectangular grid of tile symbols with one door-open flag.
// The grid contents are mutable in place (abilities edit tiles at
// runtime); the dimensions never change after creation. A pristine copy
// of the cells is kept for full resets.
type Level struct {
	ID   string
	Name string
	W    int
	H    int

	// DoorOpen gates the solidity of door tiles. Recomputed every frame
	// from plate occupancy; it is not derived from the latch set.
	DoorOpen bool

	cells    []Tile // Row-major, index = y*W + x
	pristine []Tile // Original cells, restored on Reset

	spawns map[party.ActorID]core.Vec
	gates  map[party.ActorID][]core.Rect
	plates []Coord
}

// Parse builds a Level from an ASCII row list plus per-actor spawn tile
// coordinates. Rows must be non-empty and rectangular, every symbol must
// belong to the tile alphabet, and every actor needs a spawn and at
// least one exit gate tile.
func Parse(id, name string, rows []string, spawns map[party.ActorID]Coord) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("level %s: no rows", id)
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("level %s: row %d has width %d, want %d", id, i, len(row), w)
		}
	}

	l := &Level{
		ID:     id,
		Name:   name,
		W:      w,
		H:      len(rows),
		cells:  make([]Tile, w*len(rows)),
		spawns: make(map[party.ActorID]core.Vec, party.ActorCount),
		gates:  make(map[party.ActorID][]core.Rect),
	}

	for y, row := range rows {
		for x, r := range row {
			t := Tile(r)
			if !t.Valid() {
				return nil, fmt.Errorf("level %s: invalid tile %q at (%d,%d)", id, r, x, y)
			}
			l.cells[y*w+x] = t

			switch {
			case t == TilePlate:
				l.plates = append(l.plates, Coord{X: x, Y: y})
			case GateOwner(t) != 0:
				owner := GateOwner(t)
				l.gates[owner] = append(l.gates[owner], TileRect(x, y))
			}
		}
	}

	for _, id := range party.AllActors {
		c, ok := spawns[id]
		if !ok {
			return nil, fmt.Errorf("level %s: actor %d has no spawn", l.ID, id)
		}
		if c.X < 0 || c.X >= l.W || c.Y < 0 || c.Y >= l.H {
			return nil, fmt.Errorf("level %s: spawn for actor %d out of bounds", l.ID, id)
		}
		l.spawns[id] = TileCenter(c.X, c.Y)
		if len(l.gates[id]) == 0 {
			return nil, fmt.Errorf("level %s: actor %d has no exit gate", l.ID, id)
		}
	}

	l.pristine = make([]Tile, len(l.cells))
	copy(l.pristine, l.cells)
	return l, nil
}

// InBounds reports whether the tile coordinate lies inside the grid.
func (l *Level) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < l.W && ty >= 0 && ty < l.H
}

// At returns the tile at a grid coordinate. Out-of-bounds coordinates
// resolve to a wall: permanently solid, never traversable. This is the
// boundary policy that keeps every collision query in range.
func (l *Level) At(tx, ty int) Tile {
	if !l.InBounds(tx, ty) {
		return TileWall
	}
	return l.cells[ty*l.W+tx]
}

// Set replaces the tile at a grid coordinate. Writes outside the grid or
// with symbols outside the alphabet are ignored.
func (l *Level) Set(tx, ty int, t Tile) {
	if !l.InBounds(tx, ty) || !t.Valid() {
		return
	}
	l.cells[ty*l.W+tx] = t
}

// SolidAt reports whether the tile at the given world position is solid
// under the current door state.
func (l *Level) SolidAt(wx, wy float64) bool {
	return IsSolid(l.At(WorldToTile(wx), WorldToTile(wy)), l.DoorOpen)
}

// Reset restores the pristine tile contents and closes the door.
func (l *Level) Reset() {
	copy(l.cells, l.pristine)
	l.DoorOpen = false
}

// Spawn returns the spawn point (world coordinates) for an actor.
func (l *Level) Spawn(id party.ActorID) core.Vec {
	return l.spawns[id]
}

// Gates returns the exit rectangles designated for an actor.
func (l *Level) Gates(id party.ActorID) []core.Rect {
	return l.gates[id]
}

// Plates returns the grid coordinates of every pressure plate tile.
func (l *Level) Plates() []Coord {
	return l.plates
}

// WorldToTile converts one world coordinate axis to a tile index.
func WorldToTile(w float64) int {
	return int(math.Floor(w / CellSize))
}

// TileRect returns the world-space rectangle covered by a tile.
func TileRect(tx, ty int) core.Rect {
	return core.NewRect(float64(tx)*CellSize, float64(ty)*CellSize, CellSize, CellSize)
}

// TileCenter returns the world-space center of a tile.
func TileCenter(tx, ty int) core.Vec {
	return core.Vec{
		X: (float64(tx) + 0.5) * CellSize,
		Y: (float64(ty) + 0.5) * CellSize,
	}
}
