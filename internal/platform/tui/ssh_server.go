package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

// SSHServer hosts the terminal frontend over SSH. Every connection plays
// its own game; nothing is shared between them.
type SSHServer struct {
	cfg      config.Config
	server   *ssh.Server
	sessions *session.Registry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg config.Config, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		cfg:      cfg,
		sessions: session.NewRegistry(cfg.SSH.MaxSessions),
		logger:   logger,
	}

	// Ensure host key directory exists
	hostKeyPath := cfg.SSH.HostKey
	if dir := filepath.Dir(hostKeyPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("cannot create host key directory: %w", err)
		}
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.SSH.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game and a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "breakout needs a terminal, connect with ssh -t")
		return nil, nil
	}

	id := session.ID(fmt.Sprintf("%s-%d", sshSession.User(), time.Now().UnixNano()))
	game := breakout.New(breakout.Options{LegacyMultiBounce: s.cfg.Gameplay.LegacyMultiBounce})
	sess := session.New(id, sshSession.User(), game, s.logger.With("user", sshSession.User()), audio.Silent())

	if err := s.sessions.Register(sess); err != nil {
		s.logger.Warn("session rejected", "user", sshSession.User(), "error", err)
		wish.Fatalln(sshSession, "server is full, try again later")
		return nil, nil
	}
	go func() {
		<-sshSession.Context().Done()
		s.sessions.Unregister(id)
	}()

	model := NewModel(sess, Options{
		Keys:       s.cfg.TUI.Keys,
		HoldFrames: s.cfg.TUI.HoldFrames,
		Width:      pty.Window.Width,
		Height:     pty.Window.Height,
		Renderer:   bubbletea.MakeRenderer(sshSession),
		Logger:     s.logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
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

// ListenAndServe starts the SSH server and blocks until ctx is done or the
// server fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.SSH.Address, "max_sessions", s.cfg.SSH.MaxSessions)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	active := s.Sessions()
	s.logger.Info("shutting down...", "active", len(active))
	for _, info := range active {
		s.logger.Info("closing session",
			"user", info.User,
			"score", info.Score,
			"lives", info.Lives,
			"played", time.Since(info.Started).Round(time.Second),
		)
	}
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
	return s.cfg.SSH.Address
}

// Sessions returns the active sessions, oldest first.
func (s *SSHServer) Sessions() []session.Info {
	return s.sessions.List()
}
