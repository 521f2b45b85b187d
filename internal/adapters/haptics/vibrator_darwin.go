//go:build darwin

package haptics

import (
	"io"
	"os/exec"
)

// platformPulse plays a short system sound on macOS using afplay
func platformPulse(out io.Writer) error {
	cmd := exec.Command("afplay", "/System/Library/Sounds/Tink.aiff")
	if err := cmd.Start(); err == nil {
		return nil
	}
	return terminalBell(out)
}
