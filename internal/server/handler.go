package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/deckofcards/internal/adapters/haptics"
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
	"github.com/renato0307/deckofcards/internal/ports"
	"github.com/renato0307/deckofcards/internal/services"
	"github.com/renato0307/deckofcards/internal/ui"
)

// sessionModel wraps ui.Model to log the connection lifecycle
type sessionModel struct {
	*ui.Model
	connectionID string
	startTime    time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"connection_id", s.connectionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates an independent deck session for each SSH connection
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connectionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"connection_id", connectionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	var sink ports.HapticSink
	if s.haptics {
		sink = haptics.NewVibratorForWriter(sess)
	}

	model := ui.NewModel(
		s.clock,
		domain.NewSession(s.workouts, nil),
		services.NewFeedbackService(sink),
		nil, // Registration runs once when the server starts
		s.catalog,
		s.keys,
		s.errorClearDelay,
		false, // SSH mode never uses dev mode
	)

	wrappedModel := &sessionModel{
		Model:        model,
		connectionID: connectionID,
		startTime:    time.Now(),
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}
