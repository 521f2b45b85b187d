package haptics

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVibrator(out io.Writer) (*Vibrator, *[]time.Duration) {
	var slept []time.Duration
	v := NewVibratorForWriter(out)
	v.pulse = terminalBell
	v.sleep = func(d time.Duration) { slept = append(slept, d) }
	return v, &slept
}

func TestVibrate_OnePulsePerOnSegment(t *testing.T) {
	var buf bytes.Buffer
	v, slept := newTestVibrator(&buf)
	pattern := []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond}

	require.NoError(t, v.Vibrate(pattern))

	assert.Equal(t, 3, strings.Count(buf.String(), Bell))
	assert.Equal(t, pattern, *slept)
}

func TestVibrate_EmptyPattern(t *testing.T) {
	var buf bytes.Buffer
	v, slept := newTestVibrator(&buf)

	require.NoError(t, v.Vibrate(nil))

	assert.Empty(t, buf.String())
	assert.Empty(t, *slept)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestVibrate_WriteError(t *testing.T) {
	v, _ := newTestVibrator(failingWriter{})

	err := v.Vibrate([]time.Duration{time.Millisecond})

	assert.Error(t, err)
}
