package core

// RuntimeConfig contains configuration passed to the simulation and
// platform at startup. The tick rate drives the Bubble Tea tick loop;
// the simulation itself integrates with wall-clock dt clamped upstream.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
