package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"example.com/workouts/internal/domain"
)

// CreateWorkoutRequest is the JSON payload for POST /v1/workouts.
type CreateWorkoutRequest struct {
	Type     string `json:"type"`
	Duration *int   `json:"duration"`
	Calories *int   `json:"calories"`
	Steps    *int   `json:"steps,omitempty"`
}

// toInput checks required fields. When one is missing the remaining field checks
// are reported alongside it; otherwise range and category checks happen in the store.
func (r CreateWorkoutRequest) toInput() (domain.NewWorkout, error) {
	var err error
	if r.Duration == nil {
		err = multierr.Append(err, &domain.FieldError{Field: "duration", Reason: "is required"})
	}
	if r.Calories == nil {
		err = multierr.Append(err, &domain.FieldError{Field: "calories", Reason: "is required"})
	}

	input := domain.NewWorkout{
		Type:     domain.WorkoutType(strings.TrimSpace(r.Type)),
		Duration: derefOrZero(r.Duration),
		Calories: derefOrZero(r.Calories),
		Steps:    r.Steps,
	}
	if err != nil {
		return domain.NewWorkout{}, withFieldChecks(err, input)
	}
	return input, nil
}

// parseWorkoutForm reads the add-workout form: type, duration, calories and optional steps.
func parseWorkoutForm(r *http.Request) (domain.NewWorkout, error) {
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return domain.NewWorkout{}, &domain.FieldError{Field: "form", Reason: "unable to parse form"}
	}

	var err error
	duration, fieldErr := requiredInt(r.FormValue("duration"), "duration")
	err = multierr.Append(err, fieldErr)
	calories, fieldErr := requiredInt(r.FormValue("calories"), "calories")
	err = multierr.Append(err, fieldErr)

	var steps *int
	if raw := strings.TrimSpace(r.FormValue("steps")); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			err = multierr.Append(err, &domain.FieldError{Field: "steps", Reason: "must be a whole number"})
		} else {
			steps = &parsed
		}
	}

	input := domain.NewWorkout{
		Type:     domain.WorkoutType(strings.TrimSpace(r.FormValue("type"))),
		Duration: duration,
		Calories: calories,
		Steps:    steps,
	}
	if err != nil {
		return domain.NewWorkout{}, withFieldChecks(err, input)
	}
	return input, nil
}

// withFieldChecks adds the domain checks of every field that parsed, so a single
// response names all rejected fields.
func withFieldChecks(parseErr error, input domain.NewWorkout) error {
	failed := make(map[string]struct{})
	for _, fe := range domain.FieldErrors(parseErr) {
		failed[fe.Field] = struct{}{}
	}
	err := parseErr
	for _, fe := range domain.FieldErrors(input.Validate()) {
		if _, ok := failed[fe.Field]; !ok {
			err = multierr.Append(err, fe)
		}
	}
	return err
}

func derefOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func requiredInt(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &domain.FieldError{Field: field, Reason: "is required"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.FieldError{Field: field, Reason: "must be a whole number"}
	}
	return v, nil
}
