// Package domain defines the workout store and the statistics derived from it.
package domain

import (
	"example.com/workouts/internal/observability"
)

// Service orchestrates dashboard workflows over a single Store.
type Service struct {
	store      *Store
	weeklyGoal int
}

// NewService constructs a Service. The weekly goal must be positive.
func NewService(store *Store, weeklyGoalMinutes int) (*Service, error) {
	if weeklyGoalMinutes <= 0 {
		return nil, ErrInvalidGoal
	}
	observability.SetStoredWorkouts(store.Len())
	return &Service{store: store, weeklyGoal: weeklyGoalMinutes}, nil
}

// WeeklyGoal returns the configured weekly goal in minutes.
func (s *Service) WeeklyGoal() int {
	return s.weeklyGoal
}

// AddWorkout validates and stores a new workout.
func (s *Service) AddWorkout(input NewWorkout) (Workout, error) {
	workout, err := s.store.Add(input)
	if err != nil {
		for _, fe := range FieldErrors(err) {
			observability.RecordWorkoutRejected(fe.Field)
		}
		return Workout{}, err
	}
	observability.RecordWorkoutAdded(string(workout.Type))
	observability.SetStoredWorkouts(s.store.Len())
	return workout, nil
}

// RemoveWorkout deletes a workout by id. Unknown ids are ignored and reported as false.
func (s *Service) RemoveWorkout(id string) bool {
	removed := s.store.Remove(id)
	if removed {
		observability.RecordWorkoutRemoved()
		observability.SetStoredWorkouts(s.store.Len())
	}
	return removed
}

// ListWorkouts returns workouts in insertion order.
func (s *Service) ListWorkouts() []Workout {
	return s.store.List()
}

// RecentWorkouts returns workouts newest first.
func (s *Service) RecentWorkouts() []Workout {
	return RecentActivity(s.store.List())
}

// Summary recomputes the dashboard statistics from the current workouts.
func (s *Service) Summary() (Summary, error) {
	return Summarize(s.store.List(), s.weeklyGoal)
}

// Chart recomputes the chart series from the current workouts.
func (s *Service) Chart() []ChartPoint {
	return ChartSeries(s.store.List())
}
