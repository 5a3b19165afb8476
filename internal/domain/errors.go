package domain

import (
	"errors"

	"go.uber.org/multierr"
)

var (
	// ErrInvalidWorkout is wrapped by every field-level validation failure.
	ErrInvalidWorkout = errors.New("invalid workout")
	// ErrInvalidGoal is returned when the weekly goal is not a positive number of minutes.
	ErrInvalidGoal = errors.New("weekly goal must be greater than zero")
	// ErrDuplicateID is returned when a workout id is already present in the store.
	ErrDuplicateID = errors.New("workout id already in use")
	// ErrWorkoutNotFound is returned when a workout cannot be located.
	ErrWorkoutNotFound = errors.New("workout not found")
)

// FieldError describes why a single workout field was rejected.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidWorkout
}

// FieldErrors flattens err into the field errors it carries.
func FieldErrors(err error) []*FieldError {
	var out []*FieldError
	for _, e := range multierr.Errors(err) {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}
