package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
	"github.com/renato0307/deckofcards/internal/ports"
	"github.com/renato0307/deckofcards/internal/services"
	"github.com/renato0307/deckofcards/internal/theme"
)

const (
	holdTickInterval = 50 * time.Millisecond
	holdBarMaxWidth  = 30
	registerTimeout  = 10 * time.Second
	timerInterval    = time.Second
)

type uiState int

const (
	stateDeck uiState = iota
	stateWorkoutForm
)

// Model is the Bubble Tea adapter around a deck session. Every Update fully
// applies one event to the session before the view is recomputed.
type Model struct {
	catalog      []string                  // Exercises offered by the workout form
	clock        clockwork.Clock           // Source of "now" for every session event
	devMode      bool                      // Development mode (shows version info in headers)
	errorManager *ErrorManager             // Error display and auto-clearing
	feedback     *services.FeedbackService // Haptic pulses
	height       int
	help         help.Model
	holdBar      progress.Model
	keys         KeyMap
	mouseHolding bool            // Hold was armed by a mouse press on the button
	registrar    ports.Registrar // Background registration, may be nil
	session      *domain.Session
	state        uiState
	tipIndex     int // Rotates the idle tip on every start
	width        int
	workoutForm  *Dialog
}

func NewModel(
	clock clockwork.Clock,
	session *domain.Session,
	feedback *services.FeedbackService,
	registrar ports.Registrar,
	catalog []string,
	keysConfig config.KeyBindingsConfig,
	errorClearDelay time.Duration,
	devMode bool,
) *Model {
	h := help.New()
	h.Styles.ShortKey = theme.TipKeyStyle
	h.Styles.FullKey = theme.TipKeyStyle

	return &Model{
		catalog:      catalog,
		clock:        clock,
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		feedback:     feedback,
		help:         h,
		holdBar:      progress.New(progress.WithGradient(theme.ColorHoldStart, theme.ColorHoldEnd), progress.WithoutPercentage()),
		keys:         NewKeyMap(keysConfig),
		registrar:    registrar,
		session:      session,
		state:        stateDeck,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.registerCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Session ticks keep flowing while a dialog is open
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.holdBar.Width = min(holdBarMaxWidth, max(msg.Width-4, 10))
	case timerTickMsg:
		return m, m.schedule(m.session.Tick(m.clock.Now(), msg.gen))
	case holdTickMsg:
		return m, m.schedule(m.session.HoldTick(m.clock.Now(), msg.gen))
	case holdExpiredMsg:
		out := m.session.HoldExpired(m.clock.Now(), msg.gen)
		if out.Changed {
			m.mouseHolding = false
		}
		return m, m.transition("hold_expired", out)
	case registeredMsg:
		if msg.err != nil {
			logging.Logger.Warn("Background registration failed", "error", msg.err)
		} else {
			logging.Logger.Debug("Background registration finished")
		}
		return m, nil
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	}

	switch m.state {
	case stateWorkoutForm:
		return m.updateWorkoutForm(msg)
	}
	return m.updateDeck(msg)
}

func (m *Model) updateDeck(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	now := m.clock.Now()

	if key.Matches(msg, m.keys.Application.ForceQuit.Binding) {
		return tea.Quit
	}

	// Terminals report no key release: a keyboard hold lasts until the
	// countdown fires or the cancel key is pressed. Every other key is
	// ignored while armed.
	if m.session.Holding() {
		if !key.Matches(msg, m.keys.Deck.CancelHold.Binding) {
			return nil
		}
		m.mouseHolding = false
		return m.transition("cancel_reset", m.session.CancelReset(now))
	}

	switch {
	case key.Matches(msg, m.keys.Application.Quit.Binding):
		return tea.Quit
	case key.Matches(msg, m.keys.Application.Help.Binding):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Deck.Primary.Binding):
		return m.primary(now)
	case key.Matches(msg, m.keys.Deck.Advance.Binding):
		return m.transition("advance", m.session.Advance(now))
	case key.Matches(msg, m.keys.Deck.HoldReset.Binding):
		return m.pressReset(now)
	case key.Matches(msg, m.keys.Deck.Workouts.Binding):
		return m.openWorkoutForm()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	now := m.clock.Now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		lay := m.render(now)
		switch {
		case lay.button.contains(msg.X, msg.Y):
			if m.session.Role() == domain.RoleStart {
				return m.primary(now)
			}
			cmd := m.pressReset(now)
			m.mouseHolding = m.session.Holding()
			return cmd
		case lay.card.contains(msg.X, msg.Y):
			return m.transition("advance", m.session.Advance(now))
		}

	case tea.MouseActionRelease:
		if !m.mouseHolding {
			return nil
		}
		m.mouseHolding = false
		wasFinal := m.session.State() == domain.StateOnFinalCard
		released := m.transition("release_reset", m.session.ReleaseReset(now))
		// A short press on the final card is the Done click
		if wasFinal && m.session.State() == domain.StateOnFinalCard {
			return tea.Batch(released, m.transition("done", m.session.Done(now)))
		}
		return released

	case tea.MouseActionMotion:
		if !m.mouseHolding {
			return nil
		}
		if m.render(now).button.contains(msg.X, msg.Y) {
			return nil
		}
		m.mouseHolding = false
		return m.transition("cancel_reset", m.session.CancelReset(now))
	}
	return nil
}

func (m *Model) primary(now time.Time) tea.Cmd {
	wasStart := m.session.Role() == domain.RoleStart
	out := m.session.Primary(now)
	if out.Changed && wasStart {
		m.tipIndex++
	}
	return m.transition("primary", out)
}

// pressReset arms the hold and schedules its countdown alongside the
// progress ticks. Both share the hold generation.
func (m *Model) pressReset(now time.Time) tea.Cmd {
	out := m.session.PressReset(now)
	if out.HoldTick == 0 {
		return nil
	}
	gen := out.HoldTick
	expire := tea.Tick(domain.HoldThreshold, func(time.Time) tea.Msg {
		return holdExpiredMsg{gen: gen}
	})
	return tea.Batch(m.transition("press_reset", out), expire)
}

func (m *Model) openWorkoutForm() tea.Cmd {
	content := NewWorkoutForm(m.session.Selections(), m.catalog)
	m.workoutForm = NewDialog("Workouts", content, m.devMode)
	m.state = stateWorkoutForm
	initCmd := m.workoutForm.Init()
	updated, sizeCmd := m.workoutForm.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.workoutForm = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateWorkoutForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.workoutForm.Update(msg)
	m.workoutForm = updated.(*Dialog)

	content, ok := m.workoutForm.Content().(*WorkoutForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	m.workoutForm = nil
	m.state = stateDeck
	return m, m.applyWorkoutChanges(content.Changes())
}

// applyWorkoutChanges feeds each selector edit to the session. Edits only
// take effect on the next start.
func (m *Model) applyWorkoutChanges(changes []WorkoutChange) tea.Cmd {
	for _, c := range changes {
		if err := m.session.SetWorkout(c.Suit, c.Exercise); err != nil {
			logging.Logger.Warn("Rejected workout selection", "suit", c.Suit.Name(), "error", err)
			m.errorManager.SetError(err)
			return m.errorManager.ClearAfterDelay()
		}
		logging.Logger.Info("Workout selection changed",
			"session_id", m.session.ID(),
			"suit", c.Suit.Name(),
			"exercise", c.Exercise)
	}
	return nil
}

// transition logs a state-changing event and schedules its follow-ups
func (m *Model) transition(event string, out domain.Outcome) tea.Cmd {
	if out.Changed {
		logging.Logger.Info("Session transition",
			"event", event,
			"session_id", m.session.ID(),
			"state", m.session.State(),
			"cursor", m.session.Cursor())
	}
	return m.schedule(out)
}

// schedule turns an outcome into the commands it asks for
func (m *Model) schedule(out domain.Outcome) tea.Cmd {
	var cmds []tea.Cmd
	if out.Pulse != domain.PulseNone {
		cmds = append(cmds, m.pulseCmd(out.Pulse))
	}
	if gen := out.TimerTick; gen != 0 {
		cmds = append(cmds, tea.Tick(timerInterval, func(time.Time) tea.Msg {
			return timerTickMsg{gen: gen}
		}))
	}
	if gen := out.HoldTick; gen != 0 {
		cmds = append(cmds, tea.Tick(holdTickInterval, func(time.Time) tea.Msg {
			return holdTickMsg{gen: gen}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) pulseCmd(pulse domain.Pulse) tea.Cmd {
	if !m.feedback.Available() {
		return nil
	}
	feedback := m.feedback
	return func() tea.Msg {
		feedback.Pulse(pulse)
		return nil
	}
}

func (m *Model) registerCmd() tea.Cmd {
	if m.registrar == nil {
		return nil
	}
	registrar := m.registrar
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), registerTimeout)
		defer cancel()
		return registeredMsg{err: registrar.Register(ctx)}
	}
}
