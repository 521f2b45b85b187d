package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
)

// WorkoutChange is one selector edit: the exercise picked for a suit
type WorkoutChange struct {
	Exercise string
	Suit     domain.Suit
}

// WorkoutForm lets the user pick an exercise per suit from the catalog
type WorkoutForm struct {
	Completed bool
	cancelled bool
	form      *huh.Form
	initial   domain.WorkoutMap
	values    map[domain.Suit]*string
}

// NewWorkoutForm creates a form preset to the current selections.
// Exercises in current that are missing from catalog are offered too.
func NewWorkoutForm(current domain.WorkoutMap, catalog []string) *WorkoutForm {
	wf := &WorkoutForm{
		initial: current.Clone(),
		values:  make(map[domain.Suit]*string, len(domain.Suits)),
	}

	options := huh.NewOptions(config.MergeExercises(catalog, current)...)
	fields := make([]huh.Field, 0, len(domain.Suits))
	for _, suit := range domain.Suits {
		value := current[suit]
		wf.values[suit] = &value
		fields = append(fields, huh.NewSelect[string]().
			Title(string(suit)+" "+suit.Name()).
			Options(options...).
			Value(wf.values[suit]))
	}

	wf.form = huh.NewForm(huh.NewGroup(fields...))
	return wf
}

func (wf *WorkoutForm) Init() tea.Cmd {
	return wf.form.Init()
}

func (wf *WorkoutForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			wf.cancelled = true
			wf.Completed = true
			return wf, nil
		}
	}

	form, cmd := wf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		wf.form = f
	}

	if wf.form.State == huh.StateCompleted {
		wf.Completed = true
		return wf, nil
	}

	return wf, cmd
}

func (wf *WorkoutForm) View() string {
	if wf.form != nil {
		return wf.form.View()
	}
	return ""
}

// Cancelled reports whether the user dismissed the form
func (wf *WorkoutForm) Cancelled() bool {
	return wf.cancelled
}

// Changes returns the suits whose selection differs from the preset, in
// suit order. A cancelled form has no changes.
func (wf *WorkoutForm) Changes() []WorkoutChange {
	if wf.cancelled {
		return nil
	}
	var changes []WorkoutChange
	for _, suit := range domain.Suits {
		value := *wf.values[suit]
		if value != wf.initial[suit] {
			changes = append(changes, WorkoutChange{Exercise: value, Suit: suit})
		}
	}
	return changes
}
