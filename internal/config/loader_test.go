package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsComplete(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Gravity <= 0 {
		t.Errorf("default gravity should be positive, got %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpSpeed <= 0 {
		t.Errorf("default jump speed should be positive, got %f", cfg.Physics.JumpSpeed)
	}
	if cfg.Abilities.DoubleTapWindowMS <= 0 {
		t.Errorf("default double-tap window should be positive, got %d", cfg.Abilities.DoubleTapWindowMS)
	}
	if cfg.Abilities.PlatformCap <= 0 {
		t.Errorf("default platform cap should be positive, got %d", cfg.Abilities.PlatformCap)
	}
	if len(cfg.Bindings) != 4 {
		t.Fatalf("expected bindings for 4 actors, got %d", len(cfg.Bindings))
	}
	for i, b := range cfg.Bindings {
		if b.Actor != i+1 {
			t.Errorf("binding %d: expected actor %d, got %d", i, i+1, b.Actor)
		}
		if b.Left == "" || b.Right == "" || b.Jump == "" {
			t.Errorf("actor %d: movement keys must all be bound", b.Actor)
		}
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path and no config files on disk falls back to
	// the embedded YAML, which must agree with Default() on the values
	// the simulation is tuned around.
	tmp := t.TempDir()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(origWd)
	t.Setenv("HOME", tmp)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load with embedded default failed: %v", err)
	}

	want := Default()
	if cfg.Physics.Gravity != want.Physics.Gravity {
		t.Errorf("embedded gravity %f != hardcoded %f", cfg.Physics.Gravity, want.Physics.Gravity)
	}
	if cfg.Abilities.FloodCap != want.Abilities.FloodCap {
		t.Errorf("embedded flood cap %d != hardcoded %d", cfg.Abilities.FloodCap, want.Abilities.FloodCap)
	}
	if cfg.Abilities.DashCooldownMS != want.Abilities.DashCooldownMS {
		t.Errorf("embedded dash cooldown %d != hardcoded %d", cfg.Abilities.DashCooldownMS, want.Abilities.DashCooldownMS)
	}
	if len(cfg.Bindings) != len(want.Bindings) {
		t.Errorf("embedded bindings %d != hardcoded %d", len(cfg.Bindings), len(want.Bindings))
	}
}

func TestLoadCustomPath(t *testing.T) {
	yaml := `
physics:
  gravity: 900
  jump_speed: 300
abilities:
  flood_cap: 50
  platform_cap: 3
bindings:
  - actor: 1
    left: "a"
    right: "d"
    jump: "w"
    action: "s"
`
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load custom path failed: %v", err)
	}
	if cfg.Physics.Gravity != 900 {
		t.Errorf("expected gravity 900, got %f", cfg.Physics.Gravity)
	}
	if cfg.Abilities.FloodCap != 50 {
		t.Errorf("expected flood cap 50, got %d", cfg.Abilities.FloodCap)
	}
	if len(cfg.Bindings) != 1 {
		t.Errorf("expected 1 binding, got %d", len(cfg.Bindings))
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadMalformedCustomPathErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
