// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadwatch_login_attempts_total",
			Help: "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	lockouts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roadwatch_account_lockouts_total",
		Help: "Accounts locked after too many failed attempts.",
	})

	syncDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadwatch_sync_documents_total",
			Help: "Documents seen by the sync pull, by collection and outcome.",
		},
		[]string{"collection", "outcome"},
	)

	syncPushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadwatch_sync_push_total",
			Help: "Documents pushed to the document store, by collection and outcome.",
		},
		[]string{"collection", "outcome"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadwatch_notifications_total",
			Help: "Status change notifications by outcome.",
		},
		[]string{"outcome"},
	)

	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roadwatch_build_info",
			Help: "Build information.",
		},
		[]string{"version"},
	)
)

var initOnce sync.Once

// Init registers every collector in the default registry. Safe to call more
// than once.
func Init(version string) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			loginAttempts, lockouts,
			syncDocuments, syncPushes,
			notifications,
			buildInfo,
		)
	})
	buildInfo.WithLabelValues(version).Set(1)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeLocked   = "locked"
	OutcomeInserted = "inserted"
	OutcomeSkipped  = "skipped"
	OutcomeError    = "error"
	OutcomeNoTarget = "no_target"
)

func LoginAttempt(outcome string) { loginAttempts.WithLabelValues(outcome).Inc() }

func Lockout() { lockouts.Inc() }

func SyncDocuments(collection, outcome string, n int) {
	if n > 0 {
		syncDocuments.WithLabelValues(collection, outcome).Add(float64(n))
	}
}

func SyncPush(collection, outcome string) { syncPushes.WithLabelValues(collection, outcome).Inc() }

func Notification(outcome string) { notifications.WithLabelValues(outcome).Inc() }

// Instrument records in-flight, count and latency per route. It must wrap the
// ServeMux so the matched pattern is known when the handler returns.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(sw.code)
		httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
