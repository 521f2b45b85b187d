package cmd

import (
	"fmt"

	"github.com/renato0307/deckofcards/internal/domain"
)

// PulseCmd plays a haptic pattern
type PulseCmd struct {
	Event string `arg:"" optional:"" help:"Event to play" enum:"advance,complete,reset" default:"advance"`
}

// Run executes the pulse command
func (p *PulseCmd) Run(cli *CLI) error {
	if !cli.Container.FeedbackService.Available() {
		return fmt.Errorf("haptic feedback is disabled")
	}
	cli.Container.FeedbackService.Pulse(domain.Pulse(p.Event))
	return nil
}
