//go:build !darwin

package haptics

import "io"

// platformPulse falls back to terminal bell on other platforms
func platformPulse(out io.Writer) error {
	return terminalBell(out)
}
