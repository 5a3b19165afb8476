package api

import "example.com/workouts/internal/domain"

// WorkoutView exposes a workout record.
type WorkoutView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	DateLabel string `json:"date_label"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Calories  int    `json:"calories"`
	Steps     *int   `json:"steps,omitempty"`
}

// ListWorkoutsResponse packages list results.
type ListWorkoutsResponse struct {
	Items []WorkoutView `json:"items"`
}

// WorkoutTypesResponse lists the accepted workout categories.
type WorkoutTypesResponse struct {
	Types []string `json:"types"`
}

// SummaryView describes the dashboard cards.
type SummaryView struct {
	WorkoutCount       int     `json:"workout_count"`
	TotalDuration      int     `json:"total_duration"`
	TotalCalories      int     `json:"total_calories"`
	TotalSteps         int     `json:"total_steps"`
	WeeklyGoalMinutes  int     `json:"weekly_goal_minutes"`
	GoalProgress       float64 `json:"goal_progress"`
	ActiveDays         int     `json:"active_days"`
	DistinctActiveDays int     `json:"distinct_active_days"`
	DaysPerWeek        int     `json:"days_per_week"`
}

// ChartPointView is one point of the duration/calories charts.
type ChartPointView struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
}

// ChartResponse is the date-ordered chart series.
type ChartResponse struct {
	Points []ChartPointView `json:"points"`
}

// FieldErrorView names a rejected field.
type FieldErrorView struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrorResponse is returned for rejected workouts.
type ValidationErrorResponse struct {
	Type   string           `json:"type"`
	Detail string           `json:"detail"`
	Fields []FieldErrorView `json:"fields,omitempty"`
}

func toWorkoutView(w domain.Workout) WorkoutView {
	return WorkoutView{
		ID:        w.ID,
		Date:      w.Date,
		DateLabel: domain.FormatDateLabel(w.Date),
		Type:      string(w.Type),
		Duration:  w.Duration,
		Calories:  w.Calories,
		Steps:     w.Steps,
	}
}

func toWorkoutViews(records []domain.Workout) []WorkoutView {
	items := make([]WorkoutView, 0, len(records))
	for _, w := range records {
		items = append(items, toWorkoutView(w))
	}
	return items
}

func toSummaryView(s domain.Summary) SummaryView {
	return SummaryView{
		WorkoutCount:       s.WorkoutCount,
		TotalDuration:      s.TotalDuration,
		TotalCalories:      s.TotalCalories,
		TotalSteps:         s.TotalSteps,
		WeeklyGoalMinutes:  s.WeeklyGoalMinutes,
		GoalProgress:       s.GoalProgress,
		ActiveDays:         s.ActiveDays,
		DistinctActiveDays: s.DistinctActiveDays,
		DaysPerWeek:        s.DaysPerWeek,
	}
}
