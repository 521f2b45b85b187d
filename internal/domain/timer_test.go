package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Duration
		expected string
	}{
		{"zero", 0, "00:00"},
		{"sub second", 999 * time.Millisecond, "00:00"},
		{"seconds", 9 * time.Second, "00:09"},
		{"minute boundary", time.Minute, "01:00"},
		{"mixed", 12*time.Minute + 34*time.Second, "12:34"},
		{"past an hour", 75*time.Minute + 5*time.Second, "75:05"},
		{"negative", -time.Second, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatElapsed(tt.in))
		})
	}
}

func TestTaskHandle_StartSupersedesPrevious(t *testing.T) {
	var h TaskHandle

	first := h.Start()
	second := h.Start()

	assert.False(t, h.Current(first))
	assert.True(t, h.Current(second))
}

func TestTaskHandle_CancelInvalidates(t *testing.T) {
	var h TaskHandle
	gen := h.Start()

	h.Cancel()

	assert.False(t, h.Active())
	assert.False(t, h.Current(gen))
}

func TestTimer_ElapsedOnlyWhileRunning(t *testing.T) {
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	var timer Timer

	assert.Zero(t, timer.Elapsed(start.Add(time.Minute)))

	timer.Start(start)
	assert.Equal(t, 90*time.Second, timer.Elapsed(start.Add(90*time.Second)))

	timer.Stop()
	assert.Zero(t, timer.Elapsed(start.Add(2*time.Minute)))
}

func TestHoldGesture_ProgressClamped(t *testing.T) {
	start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	var h HoldGesture

	assert.Zero(t, h.Progress(start))

	h.arm(start)
	assert.InDelta(t, 0.5, h.Progress(start.Add(time.Second)), 1e-9)
	assert.Equal(t, 1.0, h.Progress(start.Add(5*time.Second)))
	assert.Equal(t, 0.0, h.Progress(start.Add(-time.Second)))
	assert.False(t, h.Reached(start.Add(1900*time.Millisecond)))
	assert.True(t, h.Reached(start.Add(HoldThreshold)))
}
