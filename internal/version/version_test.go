package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	Version, Commit, Date, GoVersion = "v1.2.3", "abc123", "2024-01-01T00:00:00Z", "go1.22"
	t.Cleanup(func() { Version, Commit, Date, GoVersion = "dev", "unknown", "unknown", "unknown" })

	assert.Equal(t, "deckofcards v1.2.3 (commit: abc123, built: 2024-01-01T00:00:00Z, go: go1.22)", Info())
}
