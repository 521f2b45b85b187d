package ui

import (
	"fmt"

	"github.com/renato0307/deckofcards/internal/theme"
	"github.com/renato0307/deckofcards/internal/version"
)

// renderHeader creates the header used on the deck screen and in dialogs.
// It displays the app name with optional version info (in dev mode) and tagline.
// If subtitle is provided, it's rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("Deck of Cards")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7] // Short commit hash
		}
		versionInfoStr := fmt.Sprintf(" %s | %s | %s | %s",
			version.Version,
			commit,
			version.Date,
			version.GoVersion)
		appNameLine += theme.VersionStyle.Render(versionInfoStr)
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader creates a header for dialogs with a form title.
// Only the Dialog wrapper in dialog.go should call it.
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle)
}
