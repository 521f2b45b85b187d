package domain

import "time"

const (
	// HoldThreshold is how long the reset control must be held
	HoldThreshold = 2000 * time.Millisecond

	// ReleaseDebounce suppresses the click that follows an aborted hold
	ReleaseDebounce = 100 * time.Millisecond
)

// HoldGesture is the press-and-hold reset gesture.
// The countdown and the progress tick share one handle so they are
// always cancelled together.
type HoldGesture struct {
	handle TaskHandle
	start  time.Time
}

// Holding reports whether the gesture is armed
func (h HoldGesture) Holding() bool {
	return h.handle.Active()
}

// Progress returns the held fraction of HoldThreshold clamped to [0,1]
func (h HoldGesture) Progress(now time.Time) float64 {
	if !h.Holding() {
		return 0
	}
	p := float64(now.Sub(h.start)) / float64(HoldThreshold)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Reached reports whether the gesture has been held for the full threshold
func (h HoldGesture) Reached(now time.Time) bool {
	return h.Holding() && now.Sub(h.start) >= HoldThreshold
}

func (h *HoldGesture) arm(now time.Time) uint64 {
	h.start = now
	return h.handle.Start()
}

func (h *HoldGesture) disarm() {
	h.handle.Cancel()
	h.start = time.Time{}
}
