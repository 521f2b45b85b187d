package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Card colors
const (
	ColorCardBack  Color = "24"  // Navy - face-down card
	ColorCardBlack Color = "16"  // Black suits
	ColorCardFace  Color = "255" // White card stock
	ColorCardRed   Color = "160" // Red suits
)

// Button colors per role
const (
	ColorButtonDone  Color = "2"   // Green - finish the deck
	ColorButtonReset Color = "3"   // Yellow - hold to reset
	ColorButtonStart Color = "33"  // Blue - start
	ColorButtonText  Color = "255" // White label
)

// UI semantic colors
const (
	ColorComplete  Color = "46"  // Bright green - deck complete
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorTimer     Color = "226" // Yellow - elapsed time
	ColorVersion   Color = "240" // Dark gray
)

// Progress bar gradient for the hold gesture
const (
	ColorHoldStart = "#FFD75F"
	ColorHoldEnd   = "#FF5F5F"
)
