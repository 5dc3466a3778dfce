package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqualan_backend_requests_total",
			Help: "Total number of calls to the Aqualan backend by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aqualan_backend_request_duration_seconds",
			Help:    "Duration of calls to the Aqualan backend in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	checkoutSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqualan_checkout_submissions_total",
			Help: "Checkout submissions by outcome.",
		},
		[]string{"outcome"},
	)
)

// Backend call outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeClientError  = "http_4xx"
	OutcomeServerError  = "http_5xx"
	OutcomeNetworkError = "network_error"
	OutcomeDecodeError  = "decode_error"
)

func ObserveBackendCall(endpoint, outcome string, duration time.Duration) {
	backendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	backendRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Checkout outcomes.
const (
	CheckoutSucceeded  = "success"
	CheckoutRejected   = "validation_failed"
	CheckoutFailed     = "failed"
	CheckoutInProgress = "in_progress"
)

func IncCheckout(outcome string) {
	checkoutSubmissionsTotal.WithLabelValues(outcome).Inc()
}

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			// the mux fills in Pattern while routing, so read it afterwards
			pathPattern := r.Pattern
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
