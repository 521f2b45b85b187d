package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Background(ColorCardFace).
			Width(CardWidth).
			Height(CardHeight).
			Align(lipgloss.Center, lipgloss.Center)

	CardBackStyle = CardStyle.
			Background(ColorCardBack).
			Foreground(ColorSubtle)

	CardBlackStyle = lipgloss.NewStyle().
			Background(ColorCardFace).
			Foreground(ColorCardBlack).
			Bold(true)

	CardRedStyle = lipgloss.NewStyle().
			Background(ColorCardFace).
			Foreground(ColorCardRed).
			Bold(true)
)

// Card dimensions in cells, excluding the border
const (
	CardHeight = 7
	CardWidth  = 13
)

// Status line styles
var (
	CompleteStyle = lipgloss.NewStyle().
			Foreground(ColorComplete).
			Bold(true)

	InstructionStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorTimer).
			Bold(true)
)

// Button styles
var (
	buttonBase = lipgloss.NewStyle().
			Foreground(ColorButtonText).
			Bold(true).
			Padding(0, 3)

	ButtonDoneStyle  = buttonBase.Background(ColorButtonDone)
	ButtonResetStyle = buttonBase.Background(ColorButtonReset).Foreground(ColorCardBlack)
	ButtonStartStyle = buttonBase.Background(ColorButtonStart)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 3)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Workout selection styles
var (
	SelectionLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Width(12)

	SelectionValueStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)
