package config

import (
	"os"
	"path/filepath"
)

// GetHome returns DECKOFCARDS_HOME or the ~/.deckofcards default
func GetHome() string {
	home := os.Getenv("DECKOFCARDS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".deckofcards"
		}
		return filepath.Join(homeDir, ".deckofcards")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $DECKOFCARDS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetExercisesPath returns $DECKOFCARDS_HOME/exercises.yaml
func GetExercisesPath() string {
	return filepath.Join(GetHome(), "exercises.yaml")
}

// GetSSHDir returns $DECKOFCARDS_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
