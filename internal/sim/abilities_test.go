package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/party"
)

func actionFor(id party.ActorID) Inputs {
	in := NewInputs()
	in.ByActor[id] = Controls{Action: true}
	return in
}

func TestFireBreakClearsBarrierAhead(t *testing.T) {
	rows := arenaRows()
	rows[7] = "#1234  x   pp  #"
	st := newStepper(t, rows, config.Default())
	st.settle(t)

	// Fire spawns at (6,7) facing right; the barrier sits one tile ahead.
	r := st.step(actionFor(party.Actor1))
	if st.s.Level.At(7, 7) != level.TileEmpty {
		t.Errorf("barrier should break, got %q", st.s.Level.At(7, 7))
	}
	if !hasCue(r, CueFireBreak, party.Actor1) {
		t.Error("expected a fire-break cue")
	}
}

func TestFireBreakNothingToBreak(t *testing.T) {
	st := newStepper(t, arenaRows(), config.Default())
	st.settle(t)

	r := st.step(actionFor(party.Actor1))
	if hasCue(r, CueFireBreak, party.Actor1) {
		t.Error("breaking nothing should not fire a cue")
	}
}

func TestFireBreakDropsPlatformRecord(t *testing.T) {
	st := newStepper(t, arenaRows(), config.Default())
	st.settle(t)

	// A live earth platform one tile ahead of the fire actor.
	at := level.Coord{X: 7, Y: 7}
	st.s.Level.Set(at.X, at.Y, level.TileEarthPlat)
	st.s.Platforms.Place(st.s.Level, at, st.now.Add(time.Hour))

	st.step(actionFor(party.Actor1))
	if st.s.Level.At(at.X, at.Y) != level.TileEmpty {
		t.Error("fire should break the earth platform")
	}
	if st.s.Platforms.Len() != 0 {
		t.Errorf("broken platform should leave the registry, len=%d", st.s.Platforms.Len())
	}
}

func TestWaterFloodConvertsConnectedHoles(t *testing.T) {
	rows := arenaRows()
	// A hole cluster clear of the spawns, with one diagonal link to
	// verify 8-connectivity.
	rows[6] = "#           o  #"
	rows[7] = "#1234      ooo #"
	st := newStepper(t, rows, config.Default())
	st.settle(t)

	// Stand next to the cluster so a seed falls in the 3x3 neighborhood.
	teleport(st.s.Actor(party.Actor2), 10, 7)
	r := st.step(actionFor(party.Actor2))
	for _, c := range []level.Coord{{X: 11, Y: 7}, {X: 12, Y: 7}, {X: 13, Y: 7}, {X: 12, Y: 6}} {
		if got := st.s.Level.At(c.X, c.Y); got != level.TileWater {
			t.Errorf("hole at (%d,%d) should flood to water, got %q", c.X, c.Y, got)
		}
	}
	if !hasCue(r, CueWaterSplash, party.Actor2) {
		t.Error("expected a water-splash cue")
	}
}

func TestWaterFloodNoSeedNoEffect(t *testing.T) {
	st := newStepper(t, arenaRows(), config.Default())
	st.settle(t)

	r := st.step(actionFor(party.Actor2))
	if hasCue(r, CueWaterSplash, party.Actor2) {
		t.Error("flood without a nearby hole should be a no-op")
	}
}

func TestWaterFloodHonorsCap(t *testing.T) {
	rows := arenaRows()
	rows[7] = "#1234     oooo #"
	cfg := config.Default()
	cfg.Abilities.FloodCap = 2
	st := newStepper(t, rows, cfg)
	st.settle(t)

	teleport(st.s.Actor(party.Actor2), 9, 7)
	st.step(actionFor(party.Actor2))
	converted := 0
	for x := 10; x <= 13; x++ {
		if st.s.Level.At(x, 7) == level.TileWater {
			converted++
		}
	}
	if converted != 2 {
		t.Errorf("flood should stop at the cap, converted %d tiles", converted)
	}
}

func TestEarthPlacementAndCooldown(t *testing.T) {
	cfg := config.Default()
	st := newStepper(t, arenaRows(), cfg)
	st.settle(t)
	earth := st.s.Actor(party.Actor3)

	// On solid ground both candidate tiles are solid: no placement and,
	// critically, no cooldown spent.
	r := st.step(actionFor(party.Actor3))
	if hasCue(r, CueEarthThud, party.Actor3) {
		t.Fatal("placement onto solid ground should fail")
	}
	if !earth.AbilityReady.IsZero() {
		t.Fatal("failed placement must not arm the cooldown")
	}
	st.step(NewInputs()) // Release the action key.

	// Airborne over empty space the placement succeeds immediately.
	teleport(earth, 8, 3)
	r = st.step(actionFor(party.Actor3))
	if !hasCue(r, CueEarthThud, party.Actor3) {
		t.Fatal("airborne placement should succeed")
	}
	if st.s.Level.At(8, 4) != level.TileEarthPlat {
		t.Errorf("expected a platform beneath the feet, got %q", st.s.Level.At(8, 4))
	}
	if st.s.Platforms.Len() != 1 {
		t.Errorf("registry should hold one platform, len=%d", st.s.Platforms.Len())
	}

	// A second press inside the cooldown is refused.
	st.step(NewInputs())
	teleport(earth, 10, 3)
	r = st.step(actionFor(party.Actor3))
	if hasCue(r, CueEarthThud, party.Actor3) {
		t.Error("placement during cooldown should fail")
	}

	// After the cooldown it works again.
	st.step(NewInputs())
	st.now = st.now.Add(ms(cfg.Abilities.EarthCooldownMS))
	teleport(earth, 10, 3)
	r = st.step(actionFor(party.Actor3))
	if !hasCue(r, CueEarthThud, party.Actor3) {
		t.Error("placement after cooldown should succeed")
	}
}

func TestEarthPlatformExpires(t *testing.T) {
	cfg := config.Default()
	st := newStepper(t, arenaRows(), cfg)
	st.settle(t)
	earth := st.s.Actor(party.Actor3)

	teleport(earth, 8, 3)
	st.step(actionFor(party.Actor3))
	if st.s.Level.At(8, 4) != level.TileEarthPlat {
		t.Fatal("placement failed")
	}

	st.now = st.now.Add(ms(cfg.Abilities.PlatformLifetimeMS) + time.Second)
	r := st.step(NewInputs())
	if st.s.Level.At(8, 4) != level.TileEmpty {
		t.Errorf("expired platform should crumble, got %q", st.s.Level.At(8, 4))
	}
	if !hasCue(r, CueCrumble, 0) {
		t.Error("expected a crumble cue")
	}
	if st.s.Platforms.Len() != 0 {
		t.Errorf("expired platform should leave the registry, len=%d", st.s.Platforms.Len())
	}
}

func TestWindDashFromDoubleTap(t *testing.T) {
	cfg := config.Default()
	st := newStepper(t, arenaRows(), cfg)
	st.settle(t)
	wind := st.s.Actor(party.Actor4)

	in := NewInputs()
	in.Tap(party.Actor4, ButtonRight)
	r := st.step(in)

	if !wind.Dashing {
		t.Fatal("double-tap should start a dash")
	}
	if wind.Vel.X != cfg.Abilities.DashSpeed {
		t.Errorf("dash velocity should be %f, got %f", cfg.Abilities.DashSpeed, wind.Vel.X)
	}
	if !hasCue(r, CueWindDash, party.Actor4) {
		t.Error("expected a wind-dash cue")
	}

	// The dash ends on its own after the configured duration.
	st.now = st.now.Add(ms(cfg.Abilities.DashDurationMS))
	st.step(NewInputs())
	if wind.Dashing {
		t.Error("dash should end after its duration")
	}

	// Taps inside the cooldown are discarded, not queued.
	in = NewInputs()
	in.Tap(party.Actor4, ButtonLeft)
	st.step(in)
	if wind.Dashing {
		t.Error("tap during cooldown should be ignored")
	}

	st.now = st.now.Add(ms(cfg.Abilities.DashCooldownMS))
	in = NewInputs()
	in.Tap(party.Actor4, ButtonLeft)
	st.step(in)
	if !wind.Dashing {
		t.Error("tap after cooldown should dash again")
	}
	if wind.Vel.X >= 0 {
		t.Errorf("left dash should move left, Vel.X=%f", wind.Vel.X)
	}
}

func TestWindDashDiagonalNormalized(t *testing.T) {
	cfg := config.Default()
	st := newStepper(t, arenaRows(), cfg)
	st.settle(t)
	wind := st.s.Actor(party.Actor4)

	// Tap jump while holding right: the direction unions both axes.
	in := NewInputs()
	in.ByActor[party.Actor4] = Controls{Right: true}
	in.Tap(party.Actor4, ButtonJump)
	st.step(in)

	if !wind.Dashing {
		t.Fatal("diagonal tap should dash")
	}
	want := cfg.Abilities.DashSpeed * 0.7071
	if wind.Vel.X < want-1 || wind.Vel.X > want+1 {
		t.Errorf("diagonal dash X should be ~%f, got %f", want, wind.Vel.X)
	}
	if wind.Vel.Y > -want+1 || wind.Vel.Y < -want-1 {
		t.Errorf("diagonal dash Y should be ~%f, got %f", -want, wind.Vel.Y)
	}
}

func TestWindDashSuspendsGravity(t *testing.T) {
	cfg := config.Default()
	st := newStepper(t, arenaRows(), cfg)
	wind := st.s.Actor(party.Actor4)
	teleport(wind, 9, 3)

	in := NewInputs()
	in.Tap(party.Actor4, ButtonRight)
	st.step(in)

	// While dashing the vertical velocity stays at the dash vector.
	st.step(NewInputs())
	if wind.Vel.Y != 0 {
		t.Errorf("gravity should be suspended during a horizontal dash, Vel.Y=%f", wind.Vel.Y)
	}
}

func TestOnlyWindReactsToTaps(t *testing.T) {
	st := newStepper(t, arenaRows(), config.Default())
	st.settle(t)

	in := NewInputs()
	in.Tap(party.Actor1, ButtonRight)
	st.step(in)
	if st.s.Actor(party.Actor1).Dashing {
		t.Error("non-wind actors must not dash")
	}
}
