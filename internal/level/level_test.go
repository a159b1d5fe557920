package level

import (
	"testing"

	"github.com/vovakirdan/elequad/internal/party"
)

func validRows() []string {
	return []string{
		"##########",
		"#        #",
		"#1234 pD #",
		"##########",
	}
}

func validSpawns() map[party.ActorID]Coord {
	return map[party.ActorID]Coord{
		party.Actor1: {X: 1, Y: 1},
		party.Actor2: {X: 2, Y: 1},
		party.Actor3: {X: 3, Y: 1},
		party.Actor4: {X: 4, Y: 1},
	}
}

func TestParseValid(t *testing.T) {
	l, err := Parse("t", "Test", validRows(), validSpawns())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.W != 10 || l.H != 4 {
		t.Errorf("dimensions = %dx%d, want 10x4", l.W, l.H)
	}
	if len(l.Plates()) != 1 {
		t.Errorf("plates = %d, want 1", len(l.Plates()))
	}
	for _, id := range party.AllActors {
		if len(l.Gates(id)) != 1 {
			t.Errorf("actor %d gates = %d, want 1", id, len(l.Gates(id)))
		}
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	rows := validRows()
	rows[1] = "#   #"
	if _, err := Parse("t", "Test", rows, validSpawns()); err == nil {
		t.Error("ragged rows should fail")
	}
}

func TestParseRejectsUnknownSymbol(t *testing.T) {
	rows := validRows()
	rows[1] = "#   Z    #"
	if _, err := Parse("t", "Test", rows, validSpawns()); err == nil {
		t.Error("unknown tile symbol should fail")
	}
}

func TestParseRejectsMissingSpawn(t *testing.T) {
	spawns := validSpawns()
	delete(spawns, party.Actor3)
	if _, err := Parse("t", "Test", validRows(), spawns); err == nil {
		t.Error("missing spawn should fail")
	}
}

func TestParseRejectsOutOfBoundsSpawn(t *testing.T) {
	spawns := validSpawns()
	spawns[party.Actor1] = Coord{X: 99, Y: 1}
	if _, err := Parse("t", "Test", validRows(), spawns); err == nil {
		t.Error("out-of-bounds spawn should fail")
	}
}

func TestParseRejectsMissingGate(t *testing.T) {
	rows := validRows()
	rows[2] = "#123  pD #"
	if _, err := Parse("t", "Test", rows, validSpawns()); err == nil {
		t.Error("actor without a gate should fail")
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	l, err := Parse("t", "Test", validRows(), validSpawns())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, c := range []Coord{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 10, Y: 0}, {X: 0, Y: 4}} {
		if got := l.At(c.X, c.Y); got != TileWall {
			t.Errorf("At(%d,%d) = %q, want wall", c.X, c.Y, got)
		}
	}
}

func TestSetIgnoresInvalidWrites(t *testing.T) {
	l, err := Parse("t", "Test", validRows(), validSpawns())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l.Set(-1, 0, TileEmpty) // Out of bounds: ignored
	l.Set(1, 1, Tile('Z'))  // Outside the alphabet: ignored
	if l.At(1, 1) != TileEmpty {
		t.Errorf("invalid symbol write should be ignored, got %q", l.At(1, 1))
	}
}

func TestDoorSolidityFollowsDoorState(t *testing.T) {
	l, err := Parse("t", "Test", validRows(), validSpawns())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Door tile sits at (7,2).
	wx, wy := 7.5*CellSize, 2.5*CellSize
	if !l.SolidAt(wx, wy) {
		t.Error("closed door should be solid")
	}
	l.DoorOpen = true
	if l.SolidAt(wx, wy) {
		t.Error("open door should not be solid")
	}
}

func TestResetRestoresPristineCells(t *testing.T) {
	l, err := Parse("t", "Test", validRows(), validSpawns())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l.Set(1, 1, TileWater)
	l.DoorOpen = true
	l.Reset()
	if l.At(1, 1) != TileEmpty {
		t.Errorf("reset should restore cell, got %q", l.At(1, 1))
	}
	if l.DoorOpen {
		t.Error("reset should close the door")
	}
}

func TestWorldToTileFloors(t *testing.T) {
	cases := []struct {
		w    float64
		want int
	}{
		{0, 0},
		{15.9, 0},
		{16, 1},
		{-0.1, -1},
		{-16, -1},
		{-16.1, -2},
	}
	for _, c := range cases {
		if got := WorldToTile(c.w); got != c.want {
			t.Errorf("WorldToTile(%f) = %d, want %d", c.w, got, c.want)
		}
	}
}

func TestPoolSemanticsExactlyOneOf(t *testing.T) {
	pools := map[Tile]party.ActorID{
		TileEmberPool:  party.Actor1,
		TileSpringPool: party.Actor2,
		TileMudPool:    party.Actor3,
		TileMistPool:   party.Actor4,
	}
	for tile, owner := range pools {
		for _, id := range party.AllActors {
			liquid := IsLiquidFor(tile, id)
			hazard := IsHazardFor(tile, id)
			if liquid == hazard {
				t.Errorf("tile %q actor %d: liquid=%v hazard=%v, want exactly one", tile, id, liquid, hazard)
			}
			if id == owner && !liquid {
				t.Errorf("tile %q should be liquid for owner %d", tile, id)
			}
			if id != owner && !hazard {
				t.Errorf("tile %q should be hazard for non-owner %d", tile, id)
			}
		}
	}
}

func TestPlainWaterIsLiquidForAll(t *testing.T) {
	for _, id := range party.AllActors {
		if !IsLiquidFor(TileWater, id) {
			t.Errorf("water should be liquid for actor %d", id)
		}
		if IsHazardFor(TileWater, id) {
			t.Errorf("water should not be a hazard for actor %d", id)
		}
	}
}

func TestLethalTilesKillEveryone(t *testing.T) {
	for _, tile := range []Tile{TilePoison, TileDarkHole} {
		for _, id := range party.AllActors {
			if !IsHazardFor(tile, id) {
				t.Errorf("tile %q should be a hazard for actor %d", tile, id)
			}
			if IsLiquidFor(tile, id) {
				t.Errorf("tile %q should not be liquid for actor %d", tile, id)
			}
		}
	}
}

func TestSolidityTable(t *testing.T) {
	cases := []struct {
		tile     Tile
		doorOpen bool
		want     bool
	}{
		{TileWall, false, true},
		{TileWall, true, true},
		{TileBarrier, false, true},
		{TileEarthPlat, false, true},
		{TileDoor, false, true},
		{TileDoor, true, false},
		{TileEmpty, false, false},
		{TileWater, false, false},
		{TilePlate, false, false},
		{TileGate1, false, false},
	}
	for _, c := range cases {
		if got := IsSolid(c.tile, c.doorOpen); got != c.want {
			t.Errorf("IsSolid(%q, doorOpen=%v) = %v, want %v", c.tile, c.doorOpen, got, c.want)
		}
	}
}

func TestBuiltinLevelsRegistered(t *testing.T) {
	for _, id := range []string{"hollow", "cavern"} {
		if !Exists(id) {
			t.Errorf("built-in level %q should be registered", id)
		}
		l, err := Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		// Each Create hands out an independent instance.
		l.Set(1, 1, TileWall)
		l2, err := Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if l2.At(1, 1) == TileWall {
			t.Errorf("Create(%q) should return fresh instances", id)
		}
	}
}

func TestRowStringsRoundTrip(t *testing.T) {
	rows := validRows()
	l, err := Parse("t", "Test", rows, validSpawns())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l.Set(1, 1, TileWater) // Runtime edits must not leak into RowStrings.
	got := l.RowStrings()
	if len(got) != len(rows) {
		t.Fatalf("RowStrings rows = %d, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], rows[i])
		}
	}
}
