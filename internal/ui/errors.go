package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/deckofcards/internal/theme"
)

const (
	errorPrefix   = "Error: "
	maxErrorLines = 2
)

// ErrorManager handles error display and auto-clearing functionality.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError sets the current error to be displayed.
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
}

// ClearError clears the current error.
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the configured delay.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// Render wraps the current error to width, keeping at most two lines.
// Returns "" when there is no error.
func (em *ErrorManager) Render(width int) string {
	if em.currentError == nil {
		return ""
	}
	message := em.currentError.Error()
	if message == "" {
		message = "unknown error"
	}
	style := theme.ErrorStyle.MaxHeight(maxErrorLines)
	if width > 10 {
		style = style.Width(width)
	}
	return style.Render(errorPrefix + message)
}
