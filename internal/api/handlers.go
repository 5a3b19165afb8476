// Package api exposes HTTP handlers for the workout dashboard.
package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"example.com/workouts/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/workouts", h.listWorkouts).Methods(http.MethodGet)
	v1.HandleFunc("/workouts", h.createWorkout).Methods(http.MethodPost)
	v1.HandleFunc("/workouts/recent", h.recentWorkouts).Methods(http.MethodGet)
	v1.HandleFunc("/workouts/{id}", h.deleteWorkout).Methods(http.MethodDelete)
	v1.HandleFunc("/workout-types", h.workoutTypes).Methods(http.MethodGet)
	v1.HandleFunc("/summary", h.summary).Methods(http.MethodGet)
	v1.HandleFunc("/chart", h.chart).Methods(http.MethodGet)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ListWorkoutsResponse{Items: toWorkoutViews(h.service.ListWorkouts())})
}

func (h *Handler) recentWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ListWorkoutsResponse{Items: toWorkoutViews(h.service.RecentWorkouts())})
}

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	var (
		input domain.NewWorkout
		err   error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		input, err = parseWorkoutForm(r)
	default:
		var req CreateWorkoutRequest
		if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		input, err = req.toInput()
	}
	if err != nil {
		writeValidationError(w, err)
		return
	}

	workout, err := h.service.AddWorkout(input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWorkout):
			writeValidationError(w, err)
		case errors.Is(err, domain.ErrDuplicateID):
			writeError(w, http.StatusConflict, "conflict", err.Error())
		default:
			log.Errorf("add workout: %s", err)
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	log.WithFields(log.Fields{"id": workout.ID, "type": workout.Type}).Info("workout added")
	writeJSON(w, http.StatusCreated, toWorkoutView(workout))
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !h.service.RemoveWorkout(id) {
		writeError(w, http.StatusNotFound, "not_found", domain.ErrWorkoutNotFound.Error())
		return
	}
	log.WithField("id", id).Info("workout removed")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) workoutTypes(w http.ResponseWriter, r *http.Request) {
	types := domain.WorkoutTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	writeJSON(w, http.StatusOK, WorkoutTypesResponse{Types: names})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary()
	if err != nil {
		log.Errorf("summarize workouts: %s", err)
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toSummaryView(summary))
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	points := h.service.Chart()
	resp := ChartResponse{Points: make([]ChartPointView, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, ChartPointView{
			Name:     p.Label,
			Date:     p.Date,
			Duration: p.Duration,
			Calories: p.Calories,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeValidationError(w http.ResponseWriter, err error) {
	resp := ValidationErrorResponse{
		Type:   "validation_failed",
		Detail: err.Error(),
	}
	for _, fe := range domain.FieldErrors(err) {
		resp.Fields = append(resp.Fields, FieldErrorView{Field: fe.Field, Reason: fe.Reason})
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
