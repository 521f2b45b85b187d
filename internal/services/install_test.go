package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
)

func newTestInstallService(t *testing.T) (*InstallService, string) {
	home := filepath.Join(t.TempDir(), "home")
	return NewInstallServiceForPaths(home, filepath.Join(home, "settings.json"), filepath.Join(home, "exercises.yaml")), home
}

func TestRegister_WritesExamples(t *testing.T) {
	service, home := newTestInstallService(t)

	require.NoError(t, service.Register(context.Background()))

	settings, err := config.LoadSettingsFrom(filepath.Join(home, "settings.json"))
	require.NoError(t, err)
	workouts, err := settings.Workouts()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkouts(), workouts)
	assert.True(t, settings.HapticsOn())

	exercises, err := config.LoadExercises(filepath.Join(home, "exercises.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultExercises, exercises)
}

func TestRegister_KeepsExistingFiles(t *testing.T) {
	service, home := newTestInstallService(t)
	require.NoError(t, os.MkdirAll(home, 0755))
	settingsPath := filepath.Join(home, "settings.json")
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{"debug": true}`), 0644))

	require.NoError(t, service.Register(context.Background()))

	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Equal(t, `{"debug": true}`, string(data))
}

func TestRegister_CancelledContext(t *testing.T) {
	service, home := newTestInstallService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.Register(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(home)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRegister_UnwritableHome(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	service := NewInstallServiceForPaths(file, filepath.Join(file, "settings.json"), filepath.Join(file, "exercises.yaml"))

	err := service.Register(context.Background())

	assert.Error(t, err)
}
