package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"example.com/workouts/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	seed := domain.SeedWorkouts()
	store, err := domain.NewStore(
		domain.WithSeed(seed),
		domain.WithIDGenerator(domain.NewSequenceGenerator(domain.MaxSequenceID(seed))),
		domain.WithClock(func() time.Time {
			return time.Date(2025, time.September, 25, 9, 0, 0, 0, time.UTC)
		}),
	)
	require.NoError(t, err)
	service, err := domain.NewService(store, 300)
	require.NoError(t, err)

	router := mux.NewRouter()
	NewHandler(service).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListWorkouts(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/v1/workouts", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ListWorkoutsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)
	require.Equal(t, "1", resp.Items[0].ID)
	require.Equal(t, "Sep 22", resp.Items[0].DateLabel)
	require.Equal(t, 1000, *resp.Items[0].Steps)
}

func TestRecentWorkoutsNewestFirst(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/v1/workouts/recent", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ListWorkoutsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "2025-09-24", resp.Items[0].Date)
	require.Equal(t, "2025-09-22", resp.Items[2].Date)
}

func TestCreateWorkoutJSON(t *testing.T) {
	router := newTestRouter(t)

	body := `{"type":"Yoga","duration":20,"calories":150}`
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(router, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.NotContains(t, rr.Body.String(), `"steps"`)

	var created WorkoutView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "4", created.ID)
	require.Equal(t, "2025-09-25", created.Date)
	require.Equal(t, "Yoga", created.Type)
	require.Nil(t, created.Steps)

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))
	var summary SummaryView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	require.Equal(t, 155, summary.TotalDuration)
	require.Equal(t, 4500, summary.TotalSteps)
	require.Equal(t, 4, summary.ActiveDays)
}

func TestCreateWorkoutForm(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{}
	form.Set("type", "Running")
	form.Set("duration", "30")
	form.Set("calories", "280")
	form.Set("steps", "4200")
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(router, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created WorkoutView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "Running", created.Type)
	require.Equal(t, 4200, *created.Steps)
}

func TestCreateWorkoutFormRejectsNonNumeric(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{}
	form.Set("type", "Running")
	form.Set("duration", "half an hour")
	form.Set("steps", "many")
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(router, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "validation_failed", resp.Type)
	require.Equal(t, []FieldErrorView{
		{Field: "duration", Reason: "must be a whole number"},
		{Field: "calories", Reason: "is required"},
		{Field: "steps", Reason: "must be a whole number"},
	}, resp.Fields)

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/v1/workouts", nil))
	var list ListWorkoutsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Items, 3)
}

func TestCreateWorkoutFormReportsEveryField(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{}
	form.Set("type", "Skiing")
	form.Set("duration", "-5")
	form.Set("steps", "many")
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(router, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, []FieldErrorView{
		{Field: "calories", Reason: "is required"},
		{Field: "steps", Reason: "must be a whole number"},
		{Field: "type", Reason: `unknown workout type "Skiing"`},
		{Field: "duration", Reason: "must not be negative"},
	}, resp.Fields)
}

func TestCreateWorkoutRejectsOverflowingDuration(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/workouts",
		strings.NewReader(`{"type":"Gym","duration":9223372036854775807,"calories":10}`))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(router, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "duration: must not exceed 1440")

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))
	var summary SummaryView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	require.Equal(t, 135, summary.TotalDuration)
	require.Equal(t, 45.0, summary.GoalProgress)
}

func TestCreateWorkoutRejectsInvalidValues(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(map[string]any{"type": "Skydiving", "duration": -10, "calories": 50})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(router, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 2)
	require.Equal(t, "type", resp.Fields[0].Field)
	require.Equal(t, "duration", resp.Fields[1].Field)
}

func TestCreateWorkoutRequiresDurationAndCalories(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", strings.NewReader(`{"type":"Gym"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(router, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "duration: is required")
	require.Contains(t, rr.Body.String(), "calories: is required")
}

func TestCreateWorkoutMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", strings.NewReader(`{"duration":"abc"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(router, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid_request")
}

func TestDeleteWorkout(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodDelete, "/v1/workouts/2", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodDelete, "/v1/workouts/2", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodGet, "/v1/workouts", nil))
	var list ListWorkoutsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
}

func TestDeleteUnknownWorkoutLeavesListUnchanged(t *testing.T) {
	router := newTestRouter(t)

	before := serve(router, httptest.NewRequest(http.MethodGet, "/v1/workouts", nil)).Body.String()
	rr := serve(router, httptest.NewRequest(http.MethodDelete, "/v1/workouts/999", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	after := serve(router, httptest.NewRequest(http.MethodGet, "/v1/workouts", nil)).Body.String()
	require.Equal(t, before, after)
}

func TestSummary(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var summary SummaryView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	require.Equal(t, SummaryView{
		WorkoutCount:       3,
		TotalDuration:      135,
		TotalCalories:      1500,
		TotalSteps:         4500,
		WeeklyGoalMinutes:  300,
		GoalProgress:       45,
		ActiveDays:         3,
		DistinctActiveDays: 3,
		DaysPerWeek:        7,
	}, summary)
}

func TestChart(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/v1/chart", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ChartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, []ChartPointView{
		{Name: "Sep 22", Date: "2025-09-22", Duration: 45, Calories: 300},
		{Name: "Sep 23", Date: "2025-09-23", Duration: 60, Calories: 800},
		{Name: "Sep 24", Date: "2025-09-24", Duration: 30, Calories: 400},
	}, resp.Points)
}

func TestWorkoutTypes(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/v1/workout-types", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"types":["Running","Cycling","Yoga","Gym","Cardio","Sports"]}`, rr.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}

func TestUnsupportedMethod(t *testing.T) {
	router := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodPut, "/v1/workouts/1", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
