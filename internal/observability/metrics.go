// Package observability holds the Prometheus collectors exported by the workout service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsAddedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "store",
		Name:      "added_total",
		Help:      "Number of workouts added, labeled by workout type.",
	}, []string{"type"})

	workoutsRemovedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "store",
		Name:      "removed_total",
		Help:      "Number of workouts removed.",
	})

	workoutsRejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "store",
		Name:      "rejected_fields_total",
		Help:      "Number of rejected workout fields, labeled by field name.",
	}, []string{"field"})

	storedWorkoutsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workouts",
		Subsystem: "store",
		Name:      "records",
		Help:      "Number of workouts currently held in memory.",
	})

	httpRequestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests handled, labeled by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workouts",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(
		workoutsAddedCounter,
		workoutsRemovedCounter,
		workoutsRejectedCounter,
		storedWorkoutsGauge,
		httpRequestsCounter,
		httpRequestDuration,
	)
}

// RecordWorkoutAdded counts a stored workout of the given type.
func RecordWorkoutAdded(workoutType string) {
	workoutsAddedCounter.WithLabelValues(workoutType).Inc()
}

// RecordWorkoutRemoved counts a removed workout.
func RecordWorkoutRemoved() {
	workoutsRemovedCounter.Inc()
}

// RecordWorkoutRejected counts a rejected field of an add request.
func RecordWorkoutRejected(field string) {
	workoutsRejectedCounter.WithLabelValues(field).Inc()
}

// SetStoredWorkouts updates the in-memory record gauge.
func SetStoredWorkouts(n int) {
	storedWorkoutsGauge.Set(float64(n))
}

// ObserveHTTPRequest records a served request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
