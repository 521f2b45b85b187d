package services

import (
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
	"github.com/renato0307/deckofcards/internal/ports"
)

// FeedbackService delivers haptic pulses for session events.
// Haptics are optional: a nil sink makes every pulse a no-op and sink
// failures are only logged.
type FeedbackService struct {
	sink ports.HapticSink
}

// NewFeedbackService creates a new FeedbackService. sink may be nil.
func NewFeedbackService(sink ports.HapticSink) *FeedbackService {
	return &FeedbackService{sink: sink}
}

// Available reports whether a haptic sink is present
func (s *FeedbackService) Available() bool {
	return s != nil && s.sink != nil
}

// Pulse plays the pattern for the event. It never fails.
func (s *FeedbackService) Pulse(pulse domain.Pulse) {
	if !s.Available() || pulse == domain.PulseNone {
		return
	}

	pattern := pulse.Pattern()
	if len(pattern) == 0 {
		logging.Logger.Warn("Unknown pulse, skipping haptic feedback", "pulse", pulse)
		return
	}

	logging.Logger.Debug("Playing haptic feedback", "pulse", pulse, "segments", len(pattern))
	if err := s.sink.Vibrate(pattern); err != nil {
		logging.Logger.Warn("Haptic feedback failed", "pulse", pulse, "error", err)
	}
}
