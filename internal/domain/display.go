package domain

import "time"

// Display is a snapshot of every display slot after a transition
type Display struct {
	AdvanceEnabled bool
	ButtonLabel    string
	ButtonRole     ButtonRole
	CardRed        bool
	CardVisible    bool
	HoldProgress   float64
	Holding        bool
	Instruction    string
	Position       int
	Rank           string
	Selections     WorkoutMap
	State          SessionState
	Status         string
	Suit           string
	TimerText      string
	Total          int
}

// Display renders the session into display slots
func (s *Session) Display(now time.Time) Display {
	card := s.CurrentCard()
	d := Display{
		AdvanceEnabled: s.state == StateInProgress,
		ButtonRole:     s.Role(),
		CardRed:        card.Suit.IsRed(),
		CardVisible:    s.cardVisible,
		HoldProgress:   s.hold.Progress(now),
		Holding:        s.hold.Holding(),
		Position:       s.cursor + 1,
		Rank:           string(card.Rank),
		Selections:     s.selections.Clone(),
		State:          s.state,
		Status:         s.status,
		Suit:           string(card.Suit),
		TimerText:      s.timerText,
		Total:          len(s.deck),
	}

	switch s.state {
	case StateIdle:
		d.ButtonLabel = LabelStart
	case StateInProgress:
		d.ButtonLabel = LabelHold
	case StateOnFinalCard:
		d.ButtonLabel = LabelDone
	case StateComplete:
		d.ButtonLabel = LabelStartNew
	}

	if s.cardVisible {
		d.Instruction = Instruction(card, s.workouts)
	}
	return d
}
