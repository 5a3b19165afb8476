package domain

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/multierr"
)

// DateLayout is the calendar-day format used for workout dates.
const DateLayout = "2006-01-02"

// Per-record upper bounds. They keep every total far from integer overflow.
const (
	MaxDurationMinutes = 24 * 60
	MaxCalories        = 100_000
	MaxSteps           = 1_000_000
)

// WorkoutType is one of the fixed workout categories.
type WorkoutType string

const (
	WorkoutTypeRunning WorkoutType = "Running"
	WorkoutTypeCycling WorkoutType = "Cycling"
	WorkoutTypeYoga    WorkoutType = "Yoga"
	WorkoutTypeGym     WorkoutType = "Gym"
	WorkoutTypeCardio  WorkoutType = "Cardio"
	WorkoutTypeSports  WorkoutType = "Sports"
)

var workoutTypes = []WorkoutType{
	WorkoutTypeRunning,
	WorkoutTypeCycling,
	WorkoutTypeYoga,
	WorkoutTypeGym,
	WorkoutTypeCardio,
	WorkoutTypeSports,
}

// WorkoutTypes returns the supported categories in display order.
func WorkoutTypes() []WorkoutType {
	return slices.Clone(workoutTypes)
}

// Valid reports whether t belongs to the supported categories.
func (t WorkoutType) Valid() bool {
	return slices.Contains(workoutTypes, t)
}

// Workout is a single logged exercise session.
type Workout struct {
	ID       string
	Date     string
	Type     WorkoutType
	Duration int
	Calories int
	// Steps is nil when steps were not tracked.
	Steps *int
}

// StepsOrZero returns the tracked step count, or zero when untracked.
func (w Workout) StepsOrZero() int {
	if w.Steps == nil {
		return 0
	}
	return *w.Steps
}

func (w Workout) clone() Workout {
	if w.Steps != nil {
		w.Steps = IntPtr(*w.Steps)
	}
	return w
}

// Day parses the workout date.
func (w Workout) Day() (time.Time, error) {
	return time.Parse(DateLayout, w.Date)
}

// NewWorkout captures the user supplied fields of a workout to be added.
type NewWorkout struct {
	Type     WorkoutType
	Duration int
	Calories int
	Steps    *int
}

// Validate checks every field and reports all failures at once.
func (in NewWorkout) Validate() error {
	var err error
	if !in.Type.Valid() {
		err = multierr.Append(err, &FieldError{Field: "type", Reason: fmt.Sprintf("unknown workout type %q", in.Type)})
	}
	err = multierr.Append(err, checkRange("duration", in.Duration, MaxDurationMinutes))
	err = multierr.Append(err, checkRange("calories", in.Calories, MaxCalories))
	if in.Steps != nil {
		err = multierr.Append(err, checkRange("steps", *in.Steps, MaxSteps))
	}
	return err
}

func checkRange(field string, v, maxValue int) error {
	switch {
	case v < 0:
		return &FieldError{Field: field, Reason: "must not be negative"}
	case v > maxValue:
		return &FieldError{Field: field, Reason: fmt.Sprintf("must not exceed %d", maxValue)}
	}
	return nil
}

func (w Workout) validate() error {
	err := NewWorkout{Type: w.Type, Duration: w.Duration, Calories: w.Calories, Steps: w.Steps}.Validate()
	if w.ID == "" {
		err = multierr.Append(err, &FieldError{Field: "id", Reason: "is required"})
	}
	if _, parseErr := w.Day(); parseErr != nil {
		err = multierr.Append(err, &FieldError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"})
	}
	return err
}

// IntPtr returns a pointer to v, handy for optional step counts.
func IntPtr(v int) *int {
	return &v
}

// SeedWorkouts returns the sample records a fresh dashboard starts with.
func SeedWorkouts() []Workout {
	return []Workout{
		{ID: "1", Date: "2025-09-22", Type: WorkoutTypeGym, Duration: 45, Calories: 300, Steps: IntPtr(1000)},
		{ID: "2", Date: "2025-09-23", Type: WorkoutTypeCardio, Duration: 60, Calories: 800, Steps: IntPtr(3000)},
		{ID: "3", Date: "2025-09-24", Type: WorkoutTypeSports, Duration: 30, Calories: 400, Steps: IntPtr(500)},
	}
}
