package sim

import "github.com/vovakirdan/elequad/internal/party"

// Cue is a discrete one-shot feedback trigger emitted by the simulation
// for the audio/visual collaborators. Cues are fire-and-forget: the
// simulation never waits on their consumption.
type Cue int

const (
	CueJump Cue = iota
	CueFootstep
	CueFireBreak
	CueWaterSplash
	CueEarthThud
	CueWindDash
	CuePlatePress
	CueCrumble
	CueRespawn
	CueWin
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueFootstep:
		return "footstep"
	case CueFireBreak:
		return "fire-break"
	case CueWaterSplash:
		return "water-splash"
	case CueEarthThud:
		return "earth-thud"
	case CueWindDash:
		return "wind-dash"
	case CuePlatePress:
		return "plate-press"
	case CueCrumble:
		return "crumble"
	case CueRespawn:
		return "respawn"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event pairs a cue with the actor that caused it (0 for level events
// such as platform crumble).
type Event struct {
	Cue   Cue
	Actor party.ActorID
}

// Report is returned by Sim.Step after each tick.
type Report struct {
	Events []Event // One-shot cues fired this tick
	Won    bool    // All gates reached and all plates pressed
	Paused bool    // Tick was skipped because the simulation is paused
	Deaths int     // Cumulative hazard respawn count
}
