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

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.brickbreak/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game configures every session's simulation.
	Game config.Config

	// Layout replaces Game.Layout when non-nil; LayoutName labels it in
	// session records.
	Layout     breakout.Layout
	LayoutName string
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultConfig(),
		LayoutName:  "default",
	}
}

// SSHServer serves one independent simulation per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

type sessionKey struct{}

// sessionState links a session record to the simulation played in it.
type sessionState struct {
	record storage.Session
	sim    *breakout.Simulation
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// session records are only logged.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreak-ssh",
	})

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".brickbreak", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// newSimulation builds the simulation for one session.
func (s *SSHServer) newSimulation() *breakout.Simulation {
	sim := breakout.New(s.config.Game)
	if s.config.Layout != nil {
		sim.SetLayout(s.config.Layout)
	}
	return sim
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	sim := s.newSimulation()
	if state, ok := sess.Context().Value(sessionKey{}).(*sessionState); ok {
		state.sim = sim
	}

	model := NewModel(sim, s.config.Game, pty.Window.Width, pty.Window.Height).
		WithPalette(NewPalette(bubbletea.MakeRenderer(sess)))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionMiddleware logs session events and stores a record when the session ends.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		state := &sessionState{
			record: storage.NewSession("ssh", sess.User(), s.config.LayoutName),
		}
		sess.Context().SetValue(sessionKey{}, state)

		s.logger.Info("session started",
			"id", state.record.ID,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)

		next(sess)

		rec := finishSession(state.record, state.sim)
		s.logger.Info("session ended",
			"id", rec.ID,
			"user", rec.User,
			"frames", rec.Frames,
			"resets", rec.Resets,
			"destroyed", rec.Destroyed,
			"escaped", rec.Escaped,
		)
		if s.store != nil {
			if err := s.store.SaveSession(rec); err != nil {
				s.logger.Warn("could not save session", "id", rec.ID, "error", err)
			}
		}
	}
}

// finishSession fills the record's end time and counters from sim, which
// is nil when no program ran.
func finishSession(rec storage.Session, sim *breakout.Simulation) storage.Session {
	rec.EndedAt = time.Now()
	if sim == nil {
		return rec
	}
	stats := sim.Stats()
	rec.Frames = stats.Frames
	rec.Resets = stats.Resets
	rec.Destroyed = stats.Destroyed
	rec.Escaped = sim.State() == breakout.StateQuit
	return rec
}

// ListenAndServe starts the SSH server and blocks until shutdown.
// It returns the listener error if the server cannot start or stops
// on its own.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return fmt.Errorf("tui: ssh server on %s: %w", s.config.Address, err)
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
