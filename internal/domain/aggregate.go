package domain

import (
	"slices"
	"strings"
	"time"
)

// DaysPerWeek is the denominator shown next to the active day count.
const DaysPerWeek = 7

// ChartPoint is one entry of the duration and calories time series.
type ChartPoint struct {
	Label    string
	Date     string
	Duration int
	Calories int
}

// Summary bundles the derived statistics shown on the dashboard cards.
type Summary struct {
	WorkoutCount       int
	TotalDuration      int
	TotalCalories      int
	TotalSteps         int
	WeeklyGoalMinutes  int
	GoalProgress       float64
	ActiveDays         int
	DistinctActiveDays int
	DaysPerWeek        int
}

// TotalDuration sums workout minutes.
func TotalDuration(records []Workout) int {
	total := 0
	for _, w := range records {
		total += w.Duration
	}
	return total
}

// TotalCalories sums burned kilocalories.
func TotalCalories(records []Workout) int {
	total := 0
	for _, w := range records {
		total += w.Calories
	}
	return total
}

// TotalSteps sums step counts, treating untracked steps as zero.
func TotalSteps(records []Workout) int {
	total := 0
	for _, w := range records {
		total += w.StepsOrZero()
	}
	return total
}

// GoalProgress returns the share of the weekly goal reached, as a percentage capped at 100.
func GoalProgress(records []Workout, weeklyGoalMinutes int) (float64, error) {
	if weeklyGoalMinutes <= 0 {
		return 0, ErrInvalidGoal
	}
	progress := 100 * float64(TotalDuration(records)) / float64(weeklyGoalMinutes)
	return min(100, progress), nil
}

// ActiveDayCount counts one active day per workout. Several workouts on the
// same date each count; see DistinctActiveDays for the deduplicated figure.
func ActiveDayCount(records []Workout) int {
	return len(records)
}

// DistinctActiveDays counts the distinct calendar dates with at least one workout.
func DistinctActiveDays(records []Workout) int {
	days := make(map[string]struct{}, len(records))
	for _, w := range records {
		days[w.Date] = struct{}{}
	}
	return len(days)
}

// ChartSeries projects records into chart points ordered by date, oldest first.
// Workouts sharing a date keep their relative order.
func ChartSeries(records []Workout) []ChartPoint {
	points := make([]ChartPoint, 0, len(records))
	for _, w := range records {
		points = append(points, ChartPoint{
			Label:    FormatDateLabel(w.Date),
			Date:     w.Date,
			Duration: w.Duration,
			Calories: w.Calories,
		})
	}
	slices.SortStableFunc(points, func(a, b ChartPoint) int {
		return strings.Compare(a.Date, b.Date)
	})
	return points
}

// RecentActivity returns the records ordered by date, newest first.
func RecentActivity(records []Workout) []Workout {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Workout) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// FormatDateLabel renders a YYYY-MM-DD date as an abbreviated month and day, e.g. "Sep 22".
// Unparseable dates are returned unchanged.
func FormatDateLabel(date string) string {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return day.Format("Jan 2")
}

// Summarize computes every dashboard statistic for records.
func Summarize(records []Workout, weeklyGoalMinutes int) (Summary, error) {
	progress, err := GoalProgress(records, weeklyGoalMinutes)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		WorkoutCount:       len(records),
		TotalDuration:      TotalDuration(records),
		TotalCalories:      TotalCalories(records),
		TotalSteps:         TotalSteps(records),
		WeeklyGoalMinutes:  weeklyGoalMinutes,
		GoalProgress:       progress,
		ActiveDays:         ActiveDayCount(records),
		DistinctActiveDays: DistinctActiveDays(records),
		DaysPerWeek:        DaysPerWeek,
	}, nil
}
