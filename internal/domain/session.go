package domain

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// SessionState represents where a deck session is in its lifecycle
type SessionState string

const (
	StateIdle        SessionState = "idle"
	StateInProgress  SessionState = "in_progress"
	StateOnFinalCard SessionState = "final_card"
	StateComplete    SessionState = "complete"
)

// ButtonRole is what the primary action button does in the current state
type ButtonRole string

const (
	RoleStart     ButtonRole = "start"
	RoleResetOnly ButtonRole = "reset"
	RoleDone      ButtonRole = "done"
)

// Status messages
const (
	StatusReady      = "Ready to start!"
	StatusInProgress = "Deck in progress..."
	StatusFinalCard  = "Last card! Press Done when finished."
	StatusComplete   = "🎉 Deck complete!"
)

// Button labels
const (
	LabelStart    = "Start Deck"
	LabelHold     = "Hold to Reset"
	LabelDone     = "Done"
	LabelStartNew = "Start New Deck"
)

// TimerZero is the timer text shown before a session starts
const TimerZero = "00:00"

// Pulse names a haptic feedback event
type Pulse string

const (
	PulseNone     Pulse = ""
	PulseAdvance  Pulse = "advance"
	PulseComplete Pulse = "complete"
	PulseReset    Pulse = "reset"
)

// Pattern returns the vibrate/pause durations for the pulse, alternating
// on and off and starting with on
func (p Pulse) Pattern() []time.Duration {
	switch p {
	case PulseAdvance:
		return []time.Duration{50 * time.Millisecond}
	case PulseComplete:
		return []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond}
	case PulseReset:
		return []time.Duration{200 * time.Millisecond}
	}
	return nil
}

// Outcome describes what a transition did and which follow-up work the
// caller must schedule. A zero tick generation means nothing to schedule.
type Outcome struct {
	Changed   bool
	HoldTick  uint64
	Pulse     Pulse
	TimerTick uint64
}

// Session is the deck workout state machine. Every method takes the current
// time explicitly and mutates the session completely before returning.
type Session struct {
	cardVisible   bool
	cursor        int
	deck          Deck
	defaults      WorkoutMap
	hold          HoldGesture
	id            string
	rng           *rand.Rand
	selections    WorkoutMap // current selector values
	state         SessionState
	status        string
	suppressUntil time.Time
	timer         Timer
	timerText     string
	workouts      WorkoutMap // captured from selections on start
}

// NewSession creates an idle session. Missing suits in defaults fall back to
// the built-in exercises. A nil rng shuffles with the package-level source.
func NewSession(defaults WorkoutMap, rng *rand.Rand) *Session {
	defaults = defaults.WithDefaults()
	return &Session{
		deck:       NewDeck(),
		defaults:   defaults,
		rng:        rng,
		selections: defaults.Clone(),
		state:      StateIdle,
		status:     StatusReady,
		timerText:  TimerZero,
		workouts:   defaults.Clone(),
	}
}

// ID returns the identifier of the current run, empty until the first start
func (s *Session) ID() string { return s.id }

// State returns the lifecycle state
func (s *Session) State() SessionState { return s.state }

// Cursor returns the index of the current card
func (s *Session) Cursor() int { return s.cursor }

// Deck returns a copy of the deck in its current order
func (s *Session) Deck() Deck {
	out := make(Deck, len(s.deck))
	copy(out, s.deck)
	return out
}

// CurrentCard returns the card under the cursor
func (s *Session) CurrentCard() Card { return s.deck[s.cursor] }

// Workouts returns a copy of the mapping captured at start
func (s *Session) Workouts() WorkoutMap { return s.workouts.Clone() }

// Selections returns a copy of the current selector values
func (s *Session) Selections() WorkoutMap { return s.selections.Clone() }

// TimerText returns the last rendered elapsed time
func (s *Session) TimerText() string { return s.timerText }

// TimerRunning reports whether the elapsed timer is running
func (s *Session) TimerRunning() bool { return s.timer.Running() }

// Holding reports whether a hold-to-reset gesture is armed
func (s *Session) Holding() bool { return s.hold.Holding() }

// Role returns the primary button's role
func (s *Session) Role() ButtonRole {
	switch s.state {
	case StateInProgress:
		return RoleResetOnly
	case StateOnFinalCard:
		return RoleDone
	}
	return RoleStart
}

// Primary performs the primary button action for the current role.
// The reset-only role ignores plain presses; resetting needs a hold.
func (s *Session) Primary(now time.Time) Outcome {
	if s.hold.Holding() || now.Before(s.suppressUntil) {
		return Outcome{}
	}
	switch s.Role() {
	case RoleStart:
		return s.Start(now)
	case RoleDone:
		return s.Done(now)
	}
	return Outcome{}
}

// Start shuffles a fresh deck and begins a run. Valid from Idle and Complete.
func (s *Session) Start(now time.Time) Outcome {
	if s.state != StateIdle && s.state != StateComplete {
		return Outcome{}
	}
	if s.hold.Holding() {
		return Outcome{}
	}

	s.id = uuid.NewString()
	s.deck = NewDeck()
	s.deck.Shuffle(s.rng)
	s.cursor = 0
	s.workouts = s.selections.Clone()
	s.cardVisible = true
	s.state = StateInProgress
	s.status = StatusInProgress
	s.timerText = TimerZero
	gen := s.timer.Start(now)

	return Outcome{Changed: true, TimerTick: gen}
}

// Advance moves to the next card. Reaching the last card enters
// OnFinalCard, after which advancing is disabled.
func (s *Session) Advance(now time.Time) Outcome {
	if s.state != StateInProgress || s.hold.Holding() || now.Before(s.suppressUntil) {
		return Outcome{}
	}
	if s.cursor >= len(s.deck)-1 {
		return Outcome{}
	}

	s.cursor++
	if s.cursor == len(s.deck)-1 {
		s.state = StateOnFinalCard
		s.status = StatusFinalCard
	}
	return Outcome{Changed: true, Pulse: PulseAdvance}
}

// Done finishes the run from the final card and stops the timer
func (s *Session) Done(now time.Time) Outcome {
	if s.state != StateOnFinalCard || s.hold.Holding() {
		return Outcome{}
	}

	s.timerText = FormatElapsed(s.timer.Elapsed(now))
	s.timer.Stop()
	s.state = StateComplete
	s.status = StatusComplete
	return Outcome{Changed: true, Pulse: PulseComplete}
}

// Tick refreshes the timer text for a live timer generation and asks for
// the same generation to be scheduled again. Stale ticks do nothing.
func (s *Session) Tick(now time.Time, gen uint64) Outcome {
	if !s.timer.handle.Current(gen) {
		return Outcome{}
	}
	text := FormatElapsed(s.timer.Elapsed(now))
	changed := text != s.timerText
	s.timerText = text
	return Outcome{Changed: changed, TimerTick: gen}
}

// PressReset arms the hold-to-reset gesture. Only valid mid-run; a second
// press while armed is ignored.
func (s *Session) PressReset(now time.Time) Outcome {
	if s.state != StateInProgress && s.state != StateOnFinalCard {
		return Outcome{}
	}
	if s.hold.Holding() {
		return Outcome{}
	}
	gen := s.hold.arm(now)
	return Outcome{Changed: true, HoldTick: gen}
}

// HoldTick refreshes hold progress for a live gesture generation
func (s *Session) HoldTick(now time.Time, gen uint64) Outcome {
	if !s.hold.handle.Current(gen) {
		return Outcome{}
	}
	return Outcome{Changed: true, HoldTick: gen}
}

// HoldExpired executes the reset when the countdown for gen fires
func (s *Session) HoldExpired(now time.Time, gen uint64) Outcome {
	if !s.hold.handle.Current(gen) {
		return Outcome{}
	}
	return s.reset()
}

// ReleaseReset ends the gesture. Released at or past the threshold it
// resets; earlier it aborts and opens the debounce window.
func (s *Session) ReleaseReset(now time.Time) Outcome {
	if !s.hold.Holding() {
		return Outcome{}
	}
	if s.hold.Reached(now) {
		return s.reset()
	}
	s.hold.disarm()
	s.suppressUntil = now.Add(ReleaseDebounce)
	return Outcome{Changed: true}
}

// CancelReset aborts the gesture when the pointer leaves the control or the
// press is otherwise cancelled
func (s *Session) CancelReset(now time.Time) Outcome {
	return s.ReleaseReset(now)
}

// SetWorkout records a selector change. It takes effect on the next start.
func (s *Session) SetWorkout(suit Suit, exercise string) error {
	if !suit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSuit, string(suit))
	}
	if exercise == "" {
		return fmt.Errorf("%w for %s", ErrEmptyExercise, suit.Name())
	}
	s.selections[suit] = exercise
	return nil
}

// reset abandons the run. The hold handle is cancelled first so no
// countdown or progress tick can fire against the new state.
func (s *Session) reset() Outcome {
	s.hold.disarm()
	s.timer.Stop()
	s.deck = NewDeck()
	s.cursor = 0
	s.selections = s.defaults.Clone()
	s.workouts = s.defaults.Clone()
	s.cardVisible = false
	s.state = StateIdle
	s.status = StatusReady
	s.timerText = TimerZero
	s.suppressUntil = time.Time{}
	return Outcome{Changed: true, Pulse: PulseReset}
}
