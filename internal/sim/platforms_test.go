package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/elequad/internal/level"
)

func platformTestLevel(t *testing.T) *level.Level {
	t.Helper()
	return mustLevel(t, arenaRows())
}

func TestPlatformCapEvictsOldest(t *testing.T) {
	l := platformTestLevel(t)
	r := NewPlatformRegistry(3)
	base := time.Unix(1000, 0)

	coords := []level.Coord{
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2},
	}
	for i, c := range coords {
		l.Set(c.X, c.Y, level.TileEarthPlat)
		r.Place(l, c, base.Add(time.Duration(i)*time.Second))
	}

	if r.Len() != 3 {
		t.Fatalf("registry should hold cap entries, got %d", r.Len())
	}
	// The first placement was evicted and its tile reverted.
	if l.At(2, 2) != level.TileEmpty {
		t.Errorf("evicted platform tile should revert, got %q", l.At(2, 2))
	}
	for _, c := range coords[1:] {
		if l.At(c.X, c.Y) != level.TileEarthPlat {
			t.Errorf("platform at (%d,%d) should survive eviction", c.X, c.Y)
		}
	}
	if r.Entries()[0].At != coords[1] {
		t.Errorf("oldest surviving entry should be %v, got %v", coords[1], r.Entries()[0].At)
	}
}

func TestPlatformSweepRevertsExpired(t *testing.T) {
	l := platformTestLevel(t)
	r := NewPlatformRegistry(12)
	base := time.Unix(1000, 0)

	l.Set(2, 2, level.TileEarthPlat)
	l.Set(3, 2, level.TileEarthPlat)
	r.Place(l, level.Coord{X: 2, Y: 2}, base.Add(time.Second))
	r.Place(l, level.Coord{X: 3, Y: 2}, base.Add(time.Minute))

	if got := r.Sweep(l, base.Add(2*time.Second)); got != 1 {
		t.Errorf("sweep should crumble one platform, got %d", got)
	}
	if l.At(2, 2) != level.TileEmpty {
		t.Error("expired platform should revert to empty")
	}
	if l.At(3, 2) != level.TileEarthPlat {
		t.Error("unexpired platform should remain")
	}
	if r.Len() != 1 {
		t.Errorf("registry should keep one entry, got %d", r.Len())
	}
}

func TestPlatformSweepSkipsExternallyCleared(t *testing.T) {
	l := platformTestLevel(t)
	r := NewPlatformRegistry(12)
	base := time.Unix(1000, 0)

	l.Set(2, 2, level.TileEarthPlat)
	r.Place(l, level.Coord{X: 2, Y: 2}, base.Add(time.Second))

	// Someone else cleared the tile (fire break) without removing the
	// record: the sweep must not count it as a crumble.
	l.Set(2, 2, level.TileEmpty)
	if got := r.Sweep(l, base.Add(2*time.Second)); got != 0 {
		t.Errorf("sweep over a cleared tile should crumble nothing, got %d", got)
	}
	if r.Len() != 0 {
		t.Errorf("stale entry should still be dropped, got %d", r.Len())
	}
}

func TestPlatformRemove(t *testing.T) {
	l := platformTestLevel(t)
	r := NewPlatformRegistry(12)
	base := time.Unix(1000, 0)

	at := level.Coord{X: 2, Y: 2}
	l.Set(at.X, at.Y, level.TileEarthPlat)
	r.Place(l, at, base.Add(time.Second))

	if !r.Remove(at) {
		t.Error("remove of a live record should report true")
	}
	if r.Remove(at) {
		t.Error("remove of a missing record should report false")
	}
	// Remove never edits the grid.
	if l.At(at.X, at.Y) != level.TileEarthPlat {
		t.Error("remove must not touch the tile")
	}
}

func TestPlateSetLatchOnce(t *testing.T) {
	l := platformTestLevel(t)
	s := NewPlateSet(l)
	now := time.Unix(1000, 0)

	at := l.Plates()[0]
	if !s.Press(at, now) {
		t.Error("first press should latch")
	}
	if s.Press(at, now.Add(time.Second)) {
		t.Error("second press should be a no-op")
	}
	if s.AllPressed() {
		t.Error("one of two plates pressed should not be all-pressed")
	}
	if !s.Press(l.Plates()[1], now) {
		t.Error("second plate should latch")
	}
	if !s.AllPressed() {
		t.Error("both plates pressed should be all-pressed")
	}

	s.Reset()
	if s.AllPressed() {
		t.Error("reset should unlatch the plates")
	}
	if !s.Press(at, now) {
		t.Error("press after reset should latch again")
	}
}

func TestPlateSetIgnoresUnknownCoord(t *testing.T) {
	l := platformTestLevel(t)
	s := NewPlateSet(l)

	if s.Press(level.Coord{X: 1, Y: 1}, time.Unix(1000, 0)) {
		t.Error("pressing a non-plate coordinate should do nothing")
	}
}
