package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string // Defaults to ~/.ssh/authorized_keys
	Catalog            []string
	Clock              clockwork.Clock
	ErrorClearDelay    time.Duration
	Haptics            bool
	Host               string
	HostKeyPath        string // Defaults to $DECKOFCARDS_HOME/ssh/id_ed25519
	Keys               config.KeyBindingsConfig
	Port               string
	Workouts           domain.WorkoutMap
}

// Server serves one independent deck session per SSH connection
type Server struct {
	authorizedKeysPath string
	catalog            []string
	clock              clockwork.Clock
	errorClearDelay    time.Duration
	haptics            bool
	keys               config.KeyBindingsConfig
	wishServer         *ssh.Server
	workouts           domain.WorkoutMap
}

// NewServer creates a new SSH server instance
func NewServer(opts Options) (*Server, error) {
	s := &Server{
		authorizedKeysPath: opts.AuthorizedKeysPath,
		catalog:            opts.Catalog,
		clock:              opts.Clock,
		errorClearDelay:    opts.ErrorClearDelay,
		haptics:            opts.Haptics,
		keys:               opts.Keys,
		workouts:           opts.Workouts.WithDefaults(),
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}

	if s.authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	hostKeyPath := opts.HostKeyPath
	if hostKeyPath == "" {
		sshDir := config.GetSSHDir()
		if err := os.MkdirAll(sshDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create SSH directory: %w", err)
		}
		hostKeyPath = filepath.Join(sshDir, "id_ed25519")
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(opts.Host, opts.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.wishServer.Addr
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Logger.Info("Starting SSH server", "address", s.Addr())
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		logging.Logger.Info("SSH server stopped")
		return nil
	})

	return g.Wait()
}
