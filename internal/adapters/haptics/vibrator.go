package haptics

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Bell is the terminal bell control character
const Bell = "\a"

// Vibrator implements ports.HapticSink. Terminals cannot vibrate, so each
// "on" segment of a pattern becomes one audible pulse.
type Vibrator struct {
	out   io.Writer
	pulse func(out io.Writer) error
	sleep func(time.Duration)
}

// NewVibrator creates a vibrator using the platform pulse and stdout
func NewVibrator() *Vibrator {
	return &Vibrator{
		out:   os.Stdout,
		pulse: platformPulse,
		sleep: time.Sleep,
	}
}

// NewVibratorForWriter creates a vibrator that only rings the bell on out.
// Used for SSH sessions where the local speaker is not the user's.
func NewVibratorForWriter(out io.Writer) *Vibrator {
	return &Vibrator{
		out:   out,
		pulse: terminalBell,
		sleep: time.Sleep,
	}
}

// Vibrate plays the pattern. Even indexes pulse, odd indexes pause.
func (v *Vibrator) Vibrate(pattern []time.Duration) error {
	for i, d := range pattern {
		if i%2 == 0 {
			if err := v.pulse(v.out); err != nil {
				return fmt.Errorf("failed to pulse: %w", err)
			}
		}
		v.sleep(d)
	}
	return nil
}

// terminalBell writes the bell character as fallback
func terminalBell(out io.Writer) error {
	_, err := io.WriteString(out, Bell)
	return err
}
