package domain

import (
	"fmt"
	"time"
)

// TaskHandle identifies the currently scheduled instance of a recurring task.
// Starting or cancelling bumps the generation, so any tick still in flight
// for an older generation is recognised as stale and dropped.
type TaskHandle struct {
	active bool
	gen    uint64
}

// Start cancels any previous instance and returns the new generation
func (h *TaskHandle) Start() uint64 {
	h.gen++
	h.active = true
	return h.gen
}

// Cancel invalidates the current generation
func (h *TaskHandle) Cancel() {
	h.gen++
	h.active = false
}

// Active reports whether an instance is scheduled
func (h TaskHandle) Active() bool {
	return h.active
}

// Current reports whether gen belongs to the live instance
func (h TaskHandle) Current(gen uint64) bool {
	return h.active && gen == h.gen
}

// Timer tracks elapsed workout time
type Timer struct {
	handle TaskHandle
	start  time.Time
}

// Start (re)starts the timer at now and returns the tick generation to schedule
func (t *Timer) Start(now time.Time) uint64 {
	t.start = now
	return t.handle.Start()
}

// Stop cancels the recurring tick
func (t *Timer) Stop() {
	t.handle.Cancel()
}

// Running reports whether the timer is running
func (t Timer) Running() bool {
	return t.handle.Active()
}

// Elapsed returns the time since start while running, zero otherwise
func (t Timer) Elapsed(now time.Time) time.Duration {
	if !t.Running() {
		return 0
	}
	d := now.Sub(t.start)
	if d < 0 {
		return 0
	}
	return d
}

// FormatElapsed renders d as MM:SS; minutes keep counting past 59
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
