package domain

import "errors"

var (
	ErrEmptyExercise = errors.New("exercise name is empty")
	ErrUnknownSuit   = errors.New("unknown suit")
)
