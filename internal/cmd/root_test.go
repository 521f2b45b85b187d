package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/deckofcards/internal/config"
	"github.com/renato0307/deckofcards/internal/domain"
	"github.com/renato0307/deckofcards/internal/logging"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func newTestCLI(t *testing.T, settings *config.Settings) *CLI {
	t.Helper()
	t.Setenv("DECKOFCARDS_HOME", t.TempDir())
	for _, env := range []string{"DECKOFCARDS_DEBUG", "DECKOFCARDS_DEBUG_FILE", "DECKOFCARDS_MAX_LOG_FILES", "DECKOFCARDS_HAPTICS"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
	cli := &CLI{Haptics: true, MaxLogFiles: logging.DefaultMaxLogFiles}
	cli.SetSettings(settings)
	return cli
}

func TestAfterApply_SettingsFillDefaults(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{
		HapticsEnabled: boolPtr(false),
		MaxLogFiles:    intPtr(5),
	})

	require.NoError(t, cli.AfterApply())

	assert.Equal(t, 5, cli.MaxLogFiles)
	assert.False(t, cli.Haptics)
	require.NotNil(t, cli.Container)
	assert.False(t, cli.Container.FeedbackService.Available())
}

func TestAfterApply_FlagsBeatSettings(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{MaxLogFiles: intPtr(5)})
	cli.MaxLogFiles = 42

	require.NoError(t, cli.AfterApply())

	assert.Equal(t, 42, cli.MaxLogFiles)
}

func TestAfterApply_EnvBeatsSettings(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{
		HapticsEnabled: boolPtr(false),
		MaxLogFiles:    intPtr(5),
	})
	t.Setenv("DECKOFCARDS_MAX_LOG_FILES", "7")
	t.Setenv("DECKOFCARDS_HAPTICS", "1")

	require.NoError(t, cli.AfterApply())

	assert.Equal(t, logging.DefaultMaxLogFiles, cli.MaxLogFiles)
	assert.True(t, cli.Haptics)
	assert.True(t, cli.Container.FeedbackService.Available())
}

func TestAfterApply_NoHapticsFlagWins(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{HapticsEnabled: boolPtr(true)})
	cli.Haptics = false
	t.Setenv("DECKOFCARDS_HAPTICS", "1")

	require.NoError(t, cli.AfterApply())

	assert.False(t, cli.Haptics)
}

func TestLoadDeckConfig(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{
		DefaultWorkouts: map[string]string{"hearts": "Lunges"},
		Keys:            config.KeyBindingsConfig{"advance": {"j"}},
	})
	require.NoError(t, config.SaveExercises(config.GetExercisesPath(), []string{"Lunges", "Dips"}))

	cfg, err := cli.loadDeckConfig()

	require.NoError(t, err)
	assert.Equal(t, "Lunges", cfg.workouts[domain.Hearts])
	assert.Equal(t, domain.DefaultClubsExercise, cfg.workouts[domain.Clubs])
	assert.Equal(t, []string{"Lunges", "Dips"}, cfg.catalog)
	assert.Equal(t, config.KeyBindingValue{"j"}, cfg.keys["advance"])
}

func TestLoadDeckConfig_InvalidKeys(t *testing.T) {
	cli := newTestCLI(t, &config.Settings{
		Keys: config.KeyBindingsConfig{"advance": {"q"}, "quit": {"q"}},
	})

	_, err := cli.loadDeckConfig()

	assert.ErrorContains(t, err, "invalid key bindings")
}

func TestLoadDeckConfig_BrokenCatalogFallsBack(t *testing.T) {
	cli := newTestCLI(t, nil)
	path := config.GetExercisesPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("exercises: [unclosed"), 0644))

	cfg, err := cli.loadDeckConfig()

	require.NoError(t, err)
	assert.Equal(t, config.DefaultExercises, cfg.catalog)
	assert.Equal(t, domain.DefaultWorkouts(), cfg.workouts)
}

func TestWriteWorkouts_Table(t *testing.T) {
	var buf bytes.Buffer
	rows := workoutRows([]domain.Suit{domain.Spades}, domain.DefaultWorkouts())

	require.NoError(t, writeWorkouts(&buf, "table", rows))

	out := buf.String()
	assert.Contains(t, out, "Card")
	assert.Contains(t, out, "25")
	assert.Contains(t, out, domain.DefaultSpadesExercise)
	assert.Len(t, rows, len(domain.Ranks))
}

func TestWriteWorkouts_JSON(t *testing.T) {
	var buf bytes.Buffer
	rows := workoutRows(domain.Suits, domain.DefaultWorkouts())

	require.NoError(t, writeWorkouts(&buf, "json", rows))

	var decoded []workoutRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, domain.DeckSize)
	assert.Equal(t, 25, decoded[0].Reps)
	assert.Equal(t, "Do 25 reps of Push-ups", decoded[0].Instruction)
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{" ", "n"}, parseKeyValues("space, n,"))
	assert.Empty(t, parseKeyValues(" , "))
	assert.Equal(t, "space, n", joinKeyLabels([]string{" ", "n"}))
}
