package config

import (
	_ "embed"
)

//go:embed defaults/elequad.yaml
var defaultYAML []byte

// Default returns the default tuning configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:        1400,
			MaxFallSpeed:   520,
			JumpSpeed:      430,
			AirJumpFactor:  0.9,
			MoveAccel:      1900,
			MaxRunSpeed:    170,
			GroundFriction: 0.78,
			AirDrag:        0.91,
			StopThreshold:  6,

			LiquidGravityFactor: 0.15,
			LiquidDrag:          0.86,
			SwimForce:           620,
			LiquidMaxRise:       110,
			LiquidMaxSink:       140,
		},
		Abilities: AbilitiesConfig{
			DoubleTapWindowMS: 250,
			DashDurationMS:    180,
			DashCooldownMS:    3000,
			DashSpeed:         430,

			EarthCooldownMS:    4000,
			PlatformLifetimeMS: 7000,
			PlatformCap:        12,

			FloodCap: 2000,

			AirJumps: map[int]int{1: 0, 2: 0, 3: 0, 4: 0},
		},
		Bindings: []BindingConfig{
			{Actor: 1, Left: "a", Right: "d", Jump: "w", Action: "s"},
			{Actor: 2, Left: "left", Right: "right", Jump: "up", Action: "down"},
			{Actor: 3, Left: "j", Right: "l", Jump: "i", Action: "k"},
			// Wind has no action key; its dash is armed by double-taps.
			{Actor: 4, Left: "f", Right: "h", Jump: "t", Action: ""},
		},
	}
}
