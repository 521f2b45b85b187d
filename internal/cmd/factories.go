package cmd

import (
	"github.com/jonboulle/clockwork"

	"github.com/renato0307/deckofcards/internal/adapters/haptics"
	"github.com/renato0307/deckofcards/internal/ports"
	"github.com/renato0307/deckofcards/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Clock clockwork.Clock

	// Services
	FeedbackService *services.FeedbackService
	InstallService  *services.InstallService
}

// NewContainer creates a new Container with all dependencies wired.
// With haptics disabled the feedback service has no sink.
func NewContainer(hapticsEnabled bool) *Container {
	var sink ports.HapticSink
	if hapticsEnabled {
		sink = haptics.NewVibrator()
	}

	return &Container{
		Clock:           clockwork.NewRealClock(),
		FeedbackService: services.NewFeedbackService(sink),
		InstallService:  services.NewInstallService(),
	}
}
