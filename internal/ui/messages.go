package ui

// Tick messages carry the generation of the task that scheduled them.
// The session drops any generation that is no longer live.

// timerTickMsg refreshes the elapsed timer
type timerTickMsg struct {
	gen uint64
}

// holdTickMsg refreshes the hold-to-reset progress bar
type holdTickMsg struct {
	gen uint64
}

// holdExpiredMsg fires when a hold has lasted the full threshold
type holdExpiredMsg struct {
	gen uint64
}

// registeredMsg reports the outcome of background registration
type registeredMsg struct {
	err error
}

// clearErrorMsg is sent after the error clear delay to trigger error clearing.
type clearErrorMsg struct{}
