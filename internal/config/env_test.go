package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadEnv_DoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DECKOFCARDS_DEBUG=1\nDECKOFCARDS_TEST_ONLY=from-file\n"), 0644))
	t.Setenv("DECKOFCARDS_DEBUG", "0")
	t.Setenv("DECKOFCARDS_TEST_ONLY", "")
	os.Unsetenv("DECKOFCARDS_TEST_ONLY")

	require.NoError(t, LoadEnv(path))

	assert.Equal(t, "0", os.Getenv("DECKOFCARDS_DEBUG"))
	assert.Equal(t, "from-file", os.Getenv("DECKOFCARDS_TEST_ONLY"))
}
