package domain

import (
	"fmt"
	"strings"
)

// Built-in exercises used when no defaults are configured
const (
	DefaultSpadesExercise   = "Push-ups"
	DefaultHeartsExercise   = "Squats"
	DefaultDiamondsExercise = "Sit-ups"
	DefaultClubsExercise    = "Burpees"
)

// WorkoutMap associates each suit with an exercise name
type WorkoutMap map[Suit]string

// DefaultWorkouts returns the built-in suit to exercise mapping
func DefaultWorkouts() WorkoutMap {
	return WorkoutMap{
		Spades:   DefaultSpadesExercise,
		Hearts:   DefaultHeartsExercise,
		Diamonds: DefaultDiamondsExercise,
		Clubs:    DefaultClubsExercise,
	}
}

// Clone returns an independent copy of the mapping
func (w WorkoutMap) Clone() WorkoutMap {
	out := make(WorkoutMap, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// WithDefaults fills every missing or blank suit from the built-in mapping
func (w WorkoutMap) WithDefaults() WorkoutMap {
	out := DefaultWorkouts()
	for _, s := range Suits {
		if v := strings.TrimSpace(w[s]); v != "" {
			out[s] = v
		}
	}
	return out
}

// Instruction returns the workout text for a card, e.g. "Do 7 reps of Squats"
func Instruction(card Card, workouts WorkoutMap) string {
	return fmt.Sprintf("Do %d reps of %s", card.Rank.Reps(), workouts[card.Suit])
}
