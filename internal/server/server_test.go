package server

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/deckofcards/internal/domain"
)

func TestNewServer_Defaults(t *testing.T) {
	dir := t.TempDir()

	srv, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Host:               "127.0.0.1",
		HostKeyPath:        filepath.Join(dir, "id_ed25519"),
		Port:               "2222",
		Workouts:           domain.WorkoutMap{domain.Hearts: "Lunges"},
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:2222", srv.Addr())
	assert.NotNil(t, srv.clock)
	assert.Equal(t, "Lunges", srv.workouts[domain.Hearts])
	assert.Equal(t, domain.DefaultSpadesExercise, srv.workouts[domain.Spades])
	assert.FileExists(t, filepath.Join(dir, "id_ed25519"))
}
