package sim

import (
	"time"

	"github.com/vovakirdan/elequad/internal/level"
)

// PlatformRecord is one temporarily placed earth platform: its tile
// coordinate and the absolute time it crumbles on its own.
type PlatformRecord struct {
	At      level.Coord
	Expires time.Time
}

// PlatformRegistry tracks live temporary platforms in insertion order.
// Expiries grow monotonically with insertion, so age order equals slice
// order and the oldest entry is always at the front; a plain FIFO covers
// both the bounded-count eviction and the expiry sweep.
type PlatformRegistry struct {
	cap     int
	entries []PlatformRecord
}

// NewPlatformRegistry creates a registry bounded to the given live count.
func NewPlatformRegistry(cap int) *PlatformRegistry {
	return &PlatformRegistry{cap: cap}
}

// Len returns the number of live entries.
func (r *PlatformRegistry) Len() int {
	return len(r.entries)
}

// Entries returns the live records, oldest first.
func (r *PlatformRegistry) Entries() []PlatformRecord {
	return r.entries
}

// Place registers a freshly created platform tile. If the registry would
// exceed its cap, the oldest entry is evicted immediately regardless of
// its own expiry and its tile reverts to empty.
func (r *PlatformRegistry) Place(l *level.Level, at level.Coord, expires time.Time) {
	r.entries = append(r.entries, PlatformRecord{At: at, Expires: expires})
	for len(r.entries) > r.cap {
		oldest := r.entries[0]
		r.entries = r.entries[1:]
		revertPlatform(l, oldest.At)
	}
}

// Remove drops the record for a tile without touching the grid. Used
// when an external edit (the Fire ability) already cleared the tile, so
// a later sweep cannot revert it a second time.
func (r *PlatformRegistry) Remove(at level.Coord) bool {
	for i, e := range r.entries {
		if e.At == at {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Sweep reverts every entry whose expiry has passed and returns how many
// tiles actually crumbled. A tile that no longer holds the platform
// symbol is dropped silently.
func (r *PlatformRegistry) Sweep(l *level.Level, now time.Time) int {
	crumbled := 0
	kept := r.entries[:0]
	for _, e := range r.entries {
		if now.Before(e.Expires) {
			kept = append(kept, e)
			continue
		}
		if revertPlatform(l, e.At) {
			crumbled++
		}
	}
	r.entries = kept
	return crumbled
}

// Reset drops all records without editing the grid; the level's own
// reset restores the pristine tiles.
func (r *PlatformRegistry) Reset() {
	r.entries = r.entries[:0]
}

// revertPlatform clears a platform tile back to empty, but only if it
// still holds the platform symbol.
func revertPlatform(l *level.Level, at level.Coord) bool {
	if l.At(at.X, at.Y) != level.TileEarthPlat {
		return false
	}
	l.Set(at.X, at.Y, level.TileEmpty)
	return true
}
