package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/deckofcards/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context.
// It implements help.KeyMap.
type KeyMap struct {
	Application ApplicationKeys
	Deck        DeckKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Deck:        newDeckKeys(defaults, keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Deck.Primary.Binding,
		k.Deck.Advance.Binding,
		k.Deck.HoldReset.Binding,
		k.Deck.Workouts.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp returns every binding grouped into columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Deck.Primary.Binding,
			k.Deck.Advance.Binding,
			k.Deck.HoldReset.Binding,
			k.Deck.CancelHold.Binding,
		},
		{
			k.Deck.Workouts.Binding,
			k.Application.Help.Binding,
			k.Application.Quit.Binding,
			k.Application.ForceQuit.Binding,
		},
	}
}

// Tips returns the tips registered by the bindings in display order
func (k KeyMap) Tips() []Tip {
	var out []Tip
	for _, b := range []KeyWithTip{k.Deck.Advance, k.Deck.HoldReset, k.Deck.Workouts, k.Application.Help} {
		if b.Tip != nil {
			out = append(out, *b.Tip)
		}
	}
	return out
}
