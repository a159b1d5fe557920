// Package config provides YAML-based tuning configuration for the
// simulation: physics constants, ability timings, and per-actor key
// bindings.
package config

// Config contains all tuning for a session.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Bindings  []BindingConfig `yaml:"bindings"`
}

// PhysicsConfig defines the integrator constants. Speeds are world units
// per second, accelerations per second squared; one tile is 16 units.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	AirJumpFactor  float64 `yaml:"air_jump_factor"` // Fraction of jump speed for air jumps
	MoveAccel      float64 `yaml:"move_accel"`
	MaxRunSpeed    float64 `yaml:"max_run_speed"`
	GroundFriction float64 `yaml:"ground_friction"` // Per-step decay factor on ground
	AirDrag        float64 `yaml:"air_drag"`        // Per-step decay factor airborne
	StopThreshold  float64 `yaml:"stop_threshold"`  // Speeds below this snap to zero

	// Liquid immersion physics.
	LiquidGravityFactor float64 `yaml:"liquid_gravity_factor"` // Fraction of nominal gravity
	LiquidDrag          float64 `yaml:"liquid_drag"`           // Per-step decay factor in liquid
	SwimForce           float64 `yaml:"swim_force"`            // Upward acceleration while jump held
	LiquidMaxRise       float64 `yaml:"liquid_max_rise"`
	LiquidMaxSink       float64 `yaml:"liquid_max_sink"`
}

// AbilitiesConfig defines element ability timings and caps.
type AbilitiesConfig struct {
	DoubleTapWindowMS int     `yaml:"double_tap_window_ms"` // Dash arming window
	DashDurationMS    int     `yaml:"dash_duration_ms"`
	DashCooldownMS    int     `yaml:"dash_cooldown_ms"`
	DashSpeed         float64 `yaml:"dash_speed"`

	EarthCooldownMS    int `yaml:"earth_cooldown_ms"`
	PlatformLifetimeMS int `yaml:"platform_lifetime_ms"`
	PlatformCap        int `yaml:"platform_cap"` // Max live temporary platforms

	FloodCap int `yaml:"flood_cap"` // Max dark holes converted per activation

	// AirJumps is the per-actor air-jump budget, indexed by actor number.
	// All shipped levels run with zero; the branch exists as a tuning
	// extension point.
	AirJumps map[int]int `yaml:"air_jumps"`
}

// BindingConfig maps one actor's four logical buttons to key names.
// Key names follow Bubble Tea's KeyMsg.String() form ("a", "left", ...).
// Action may be empty: that actor simply has no ability key.
type BindingConfig struct {
	Actor  int    `yaml:"actor"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Jump   string `yaml:"jump"`
	Action string `yaml:"action"`
}
