package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/elequad/internal/config"
	"github.com/vovakirdan/elequad/internal/core"
	"github.com/vovakirdan/elequad/internal/level"
	"github.com/vovakirdan/elequad/internal/party"
	"github.com/vovakirdan/elequad/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.elequad/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// ConfigPath is an optional tuning config file. Empty means the
	// default search path.
	ConfigPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.elequad/runs.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that serves the game over SSH.
// Every connection gets its own SessionModel; all sessions share the
// runs database and the tuning config loaded at startup.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	tuning   config.Config
	sessions *party.SessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "elequad-ssh",
	})

	tuning, err := config.Load(cfg.ConfigPath)
	if err != nil {
		logger.Warn("could not load tuning config, using defaults", "error", err)
		tuning = config.Default()
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		tuning:   tuning,
		sessions: party.NewSessionRegistry(),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".elequad", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.trackingMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionKey derives the registry ID for a connection. The remote
// address makes it unique per connection even for the same user.
func sessionKey(s ssh.Session) party.SessionID {
	return party.SessionID(fmt.Sprintf("%s@%s", s.User(), s.RemoteAddr().String()))
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
	}

	var handle *party.ChannelSession
	if h, found := s.sessions.Get(sessionKey(sshSession)); found {
		handle, _ = h.(*party.ChannelSession)
	}

	model := NewSessionModel(s.store, s.tuning, rt, sshSession.User(), handle)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// trackingMiddleware registers each connection in the session registry
// for the lifetime of the connection, so shutdown can notify everyone.
func (s *SSHServer) trackingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		handle := party.NewChannelSession(sessionKey(sshSession), 8)
		s.sessions.Register(handle)
		defer func() {
			s.sessions.Unregister(handle.ID())
			handle.Close()
		}()
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown notifies connected sessions and gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	s.sessions.Broadcast(party.SessionEvent{
		Kind:    party.EventShutdown,
		Message: "server is shutting down",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen identifies which screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenStats
	screenGame
)

// sessionEventMsg wraps a registry event for the Bubble Tea loop.
type sessionEventMsg party.SessionEvent

// waitForSessionEvent blocks on the session's event channel.
func waitForSessionEvent(h *party.ChannelSession) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case evt := <-h.Events():
			return sessionEventMsg(evt)
		case <-h.Done():
			return nil
		}
	}
}

// SessionModel manages the full remote session flow: menu, stats board
// and game, with the menu as the hub. It is the top-level model for SSH
// sessions.
type SessionModel struct {
	store    *storage.Store
	tuning   config.Config
	runtime  core.RuntimeConfig
	username string
	handle   *party.ChannelSession

	menu   MenuModel
	stats  StatsModel
	game   *GameModel
	screen sessionScreen

	notice   string
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, tuning config.Config, rt core.RuntimeConfig, username string, handle *party.ChannelSession) SessionModel {
	return SessionModel{
		store:    store,
		tuning:   tuning,
		runtime:  rt,
		username: username,
		handle:   handle,
		menu:     NewMenuModel(store, rt.ScreenW, rt.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), waitForSessionEvent(m.handle))
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height

	case sessionEventMsg:
		if msg.Kind == party.EventShutdown {
			m.notice = msg.Message
			m.quitting = true
			return m, tea.Quit
		}
		return m, waitForSessionEvent(m.handle)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is showing.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStats() {
		m.stats = NewStatsModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenStats
		return m, m.stats.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		l, err := level.Create(selected.LevelID)
		if err != nil {
			// Menu only lists registered levels.
			m.menu = NewMenuModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
			return m, nil
		}

		game, err := NewGameModel(l, m.store, m.tuning, m.runtime)
		if err != nil {
			m.menu = NewMenuModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
			return m, nil
		}

		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateStats handles updates while the stats board is showing.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newStats, cmd := m.stats.Update(msg)
	if statsModel, ok := newStats.(StatsModel); ok {
		m.stats = statsModel
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.IsGoingBack() {
		m.screen = screenMenu
		m.menu = NewMenuModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateGame handles updates while a level is being played.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Back to menu swallows the game's quit command.
	if m.game.BackToMenu() {
		m.screen = screenMenu
		m.game = nil
		m.menu = NewMenuModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		if m.notice != "" {
			return fmt.Sprintf("\n  %s\n", m.notice)
		}
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
		return ""
	case screenStats:
		return m.stats.View()
	default:
		return m.menu.View()
	}
}
