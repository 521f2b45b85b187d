package ui

import (
	"github.com/renato0307/deckofcards/internal/config"
)

// DeckKeys defines key bindings that drive the deck session
type DeckKeys struct {
	Advance    KeyWithTip
	CancelHold KeyWithTip
	HoldReset  KeyWithTip
	Primary    KeyWithTip
	Workouts   KeyWithTip
}

// newDeckKeys creates deck key bindings
func newDeckKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) DeckKeys {
	return DeckKeys{
		Advance:    buildBinding("advance", defaults, customKeys),
		CancelHold: buildBinding("cancel_hold", defaults, customKeys),
		HoldReset:  buildBinding("hold_reset", defaults, customKeys),
		Primary:    buildBinding("primary", defaults, customKeys),
		Workouts:   buildBinding("workouts", defaults, customKeys),
	}
}
