package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
)

// InstallService prepares the application home on startup: it creates the
// directory and drops example settings.json and exercises.yaml files the
// user can edit. Existing files are never touched.
type InstallService struct {
	exercisesPath string
	home          string
	settingsPath  string
}

// NewInstallService creates an InstallService for the configured home
func NewInstallService() *InstallService {
	return NewInstallServiceForPaths(config.GetHome(), config.GetSettingsPath(), config.GetExercisesPath())
}

// NewInstallServiceForPaths creates an InstallService for explicit paths
func NewInstallServiceForPaths(home, settingsPath, exercisesPath string) *InstallService {
	return &InstallService{
		exercisesPath: exercisesPath,
		home:          home,
		settingsPath:  settingsPath,
	}
}

// Register implements ports.Registrar
func (s *InstallService) Register(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.home, 0755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	var errs []error

	if missing(s.settingsPath) {
		enabled := true
		example := &config.Settings{
			DefaultWorkouts: map[string]string{},
			HapticsEnabled:  &enabled,
		}
		for suit, exercise := range domain.DefaultWorkouts() {
			example.DefaultWorkouts[suit.Name()] = exercise
		}
		if err := config.SaveSettings(s.settingsPath, example); err != nil {
			errs = append(errs, err)
		} else {
			logging.Logger.Info("Wrote example settings", "path", s.settingsPath)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if missing(s.exercisesPath) {
		if err := config.SaveExercises(s.exercisesPath, config.DefaultExercises); err != nil {
			errs = append(errs, err)
		} else {
			logging.Logger.Info("Wrote example exercises", "path", s.exercisesPath)
		}
	}

	return errors.Join(errs...)
}

func missing(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}
