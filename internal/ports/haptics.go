package ports

import "time"

// HapticSink delivers vibration feedback
type HapticSink interface {
	// Vibrate plays a pattern of alternating on/off durations, starting with on
	Vibrate(pattern []time.Duration) error
}
