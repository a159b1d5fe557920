package sim

import (
	"time"

	"github.com/vovakirdan/elequad/internal/level"
)

// PlateRecord tracks one pressure plate. Pressed is monotonic: once an
// actor has stood on the plate it stays pressed until a full reset. The
// press timestamp exists for transient presentation feedback only.
type PlateRecord struct {
	At        level.Coord
	Pressed   bool
	PressedAt time.Time
}

// PlateSet holds every plate of the current level.
type PlateSet struct {
	records []PlateRecord
	index   map[level.Coord]int
}

// NewPlateSet builds the plate set from the level's plate tiles.
func NewPlateSet(l *level.Level) *PlateSet {
	coords := l.Plates()
	s := &PlateSet{
		records: make([]PlateRecord, len(coords)),
		index:   make(map[level.Coord]int, len(coords)),
	}
	for i, c := range coords {
		s.records[i] = PlateRecord{At: c}
		s.index[c] = i
	}
	return s
}

// Press latches the plate at the given tile. Returns true only when the
// plate transitions to pressed, so feedback fires exactly once.
func (s *PlateSet) Press(at level.Coord, now time.Time) bool {
	i, ok := s.index[at]
	if !ok || s.records[i].Pressed {
		return false
	}
	s.records[i].Pressed = true
	s.records[i].PressedAt = now
	return true
}

// AllPressed reports whether every plate has latched. Order of presses
// does not matter; the latch set is cumulative.
func (s *PlateSet) AllPressed() bool {
	for _, r := range s.records {
		if !r.Pressed {
			return false
		}
	}
	return true
}

// Records returns the plate records for rendering.
func (s *PlateSet) Records() []PlateRecord {
	return s.records
}

// Reset unlatches every plate.
func (s *PlateSet) Reset() {
	for i := range s.records {
		s.records[i].Pressed = false
		s.records[i].PressedAt = time.Time{}
	}
}
