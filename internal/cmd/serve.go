package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/deckofcards/internal/logging"
	"github.com/renato0307/deckofcards/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Host            string `help:"Host to bind to" default:"localhost"`
	Port            string `help:"Port to listen on" default:"23235"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting deck SSH server", "host", s.Host, "port", s.Port)

	cfg, err := cli.loadDeckConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Container.InstallService.Register(ctx); err != nil {
		logging.Logger.Warn("Registration failed", "error", err)
	}

	srv, err := server.NewServer(server.Options{
		Catalog:         cfg.catalog,
		Clock:           cli.Container.Clock,
		ErrorClearDelay: time.Duration(s.ErrorClearDelay) * time.Second,
		Haptics:         cli.Haptics,
		Host:            s.Host,
		Keys:            cfg.keys,
		Port:            s.Port,
		Workouts:        cfg.workouts,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Printf("SSH server listening on %s\n", srv.Addr())
	return srv.Start(ctx)
}
