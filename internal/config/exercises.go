package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/deckofcards/internal/domain"
)

// DefaultExercises is the catalog offered by the workout selector when no
// exercises.yaml exists
var DefaultExercises = []string{
	domain.DefaultSpadesExercise,
	domain.DefaultHeartsExercise,
	domain.DefaultDiamondsExercise,
	domain.DefaultClubsExercise,
	"Lunges",
	"Jumping jacks",
	"Mountain climbers",
	"Dips",
	"Crunches",
	"Pull-ups",
}

// ExerciseCatalog is the structure of exercises.yaml
type ExerciseCatalog struct {
	Exercises []string `yaml:"exercises"`
}

// LoadExercises reads the catalog at path. A missing file yields the
// default catalog. Blank and duplicate names are dropped.
func LoadExercises(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return append([]string(nil), DefaultExercises...), nil
		}
		return nil, fmt.Errorf("failed to read exercises file: %w", err)
	}

	var catalog ExerciseCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("invalid exercises.yaml: %w", err)
	}

	exercises := normalizeExercises(catalog.Exercises)
	if len(exercises) == 0 {
		return append([]string(nil), DefaultExercises...), nil
	}
	return exercises, nil
}

// SaveExercises writes the catalog to path
func SaveExercises(path string, exercises []string) error {
	data, err := yaml.Marshal(ExerciseCatalog{Exercises: exercises})
	if err != nil {
		return fmt.Errorf("failed to marshal exercises: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create exercises directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write exercises file: %w", err)
	}
	return nil
}

// MergeExercises appends every workout exercise missing from the catalog so
// configured defaults are always selectable. Matching is exact: selectors
// only preselect an option spelled exactly like the current value.
func MergeExercises(catalog []string, workouts domain.WorkoutMap) []string {
	out := append([]string(nil), catalog...)
	for _, s := range domain.Suits {
		exercise := workouts[s]
		if exercise != "" && !slices.Contains(out, exercise) {
			out = append(out, exercise)
		}
	}
	return out
}

func normalizeExercises(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.TrimSpace(e)
		if e == "" || containsFold(out, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsFold(list []string, value string) bool {
	for _, v := range list {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}
