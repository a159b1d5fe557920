package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/party"
	"github.com/vovakirdan/elequad/internal/sim"
	"github.com/vovakirdan/elequad/internal/storage"
)

// GameModel is the Bubble Tea model for one level session. It owns the
// simulation, translates terminal keys into per-actor controls and saves
// the run when it finishes.
type GameModel struct {
	game    *sim.Sim
	screen  *core.Screen
	store   *storage.Store
	cfg     config.Config
	runtime core.RuntimeConfig

	keymap *Keymap
	keys   *keyState
	taps   *sim.DoubleTapTracker
	// Double-taps detected since the last tick, delivered with the next
	// Inputs and then dropped.
	pendingTaps map[party.ActorID][]sim.Button

	startedAt  time.Time
	lastTick   time.Time
	userPaused bool
	runSaved   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model running the given level.
func NewGameModel(l *level.Level, store *storage.Store, cfg config.Config, rt core.RuntimeConfig) (GameModel, error) {
	km, err := NewKeymap(cfg.Bindings)
	if err != nil {
		return GameModel{}, err
	}

	return GameModel{
		game:        sim.New(l, cfg),
		screen:      core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:       store,
		cfg:         cfg,
		runtime:     rt,
		keymap:      km,
		keys:        newKeyState(),
		taps:        sim.NewDoubleTapTracker(time.Duration(cfg.Abilities.DoubleTapWindowMS) * time.Millisecond),
		pendingTaps: make(map[party.ActorID][]sim.Button),
		startedAt:   time.Now(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	now := time.Now()

	switch sessionAction(key) {
	case core.ActionQuit:
		m.saveRun(now)
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.togglePause()
		return m, nil

	case core.ActionReset:
		m.restart(now)
		return m, nil

	case core.ActionBack:
		if m.game.Won() || m.userPaused {
			m.saveRun(now)
			m.backToMenu = true
			// SessionModel intercepts backToMenu and drops the quit;
			// standalone play exits here.
			return m, tea.Quit
		}
		m.togglePause()
		return m, nil
	}

	if ab, ok := m.keymap.Lookup(key); ok {
		if m.keys.observe(key, now) && m.taps.Observe(ab.actor, ab.button, now) {
			m.pendingTaps[ab.actor] = append(m.pendingTaps[ab.actor], ab.button)
		}
	}
	return m, nil
}

// togglePause flips the user's pause context on the re-entrant stack.
func (m *GameModel) togglePause() {
	if m.userPaused {
		m.game.PopPause()
	} else {
		m.game.PushPause()
	}
	m.userPaused = !m.userPaused
}

// restart resets the session to a fresh attempt at the same level.
func (m *GameModel) restart(now time.Time) {
	m.game.Reset()
	m.keys.reset()
	m.taps.Reset()
	for id := range m.pendingTaps {
		delete(m.pendingTaps, id)
	}
	m.startedAt = now
	m.runSaved = false
}

// handleTick advances the simulation by the wall-clock delta.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	report := m.game.Step(m.collectInputs(now), now, dt)

	if report.Won && !m.runSaved {
		m.saveRun(now)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// collectInputs snapshots the synthesized hold-state of every bound key
// plus the double-taps gathered since the previous tick.
func (m GameModel) collectInputs(now time.Time) sim.Inputs {
	in := sim.NewInputs()
	for key, ab := range m.keymap.byKey {
		if !m.keys.held(key, now) {
			continue
		}
		c := in.ByActor[ab.actor]
		setButton(&c, ab.button)
		in.ByActor[ab.actor] = c
	}
	for id, taps := range m.pendingTaps {
		for _, b := range taps {
			in.Tap(id, b)
		}
		delete(m.pendingTaps, id)
	}
	return in
}

// saveRun persists the attempt once: completed if the level was won,
// abandoned otherwise. Best-effort; play continues without storage.
func (m *GameModel) saveRun(now time.Time) {
	if m.runSaved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		LevelID:      m.game.Level.ID,
		Deaths:       m.game.Deaths,
		DurationSecs: int(now.Sub(m.startedAt).Seconds()),
		Completed:    m.game.Won(),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	DrawSession(m.screen, m.game, time.Since(m.startedAt))
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one level in the local terminal. It reports whether the
// user backed out to the menu rather than quitting outright.
func Run(levelID string, store *storage.Store, cfg config.Config, rt core.RuntimeConfig) (backToMenu bool, err error) {
	l, err := level.Create(levelID)
	if err != nil {
		return false, err
	}

	model, err := NewGameModel(l, store, cfg, rt)
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
