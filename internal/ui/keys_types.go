package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/deckofcards/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip builds a tip with format string and keys to highlight.
// Format uses %s placeholders for keys, e.g. newTip("press %s to pick", "w")
func newTip(format string, keys ...string) *Tip {
	return &Tip{Format: format, Keys: keys}
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var result string
	result += theme.TipTextStyle.Render("ℹ  tip: ")
	for i, part := range parts {
		result += theme.TipTextStyle.Render(part)
		if i < len(tip.Keys) {
			result += theme.TipKeyStyle.Render(tip.Keys[i])
		}
	}
	return result
}

// KeyWithTip wraps a key.Binding with an optional tip shown on the idle screen.
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}

// keyLabel returns the printable name of a key as reported by Bubble Tea
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
