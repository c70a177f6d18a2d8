package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airport-registry-service/pkg/metrics"
)

// NewRouter assembles the registry's HTTP surface: entity resources plus
// health and metrics endpoints.
func NewRouter(
	airlines *AirlineHandler,
	pilots *PilotHandler,
	flights *FlightHandler,
	m *metrics.Metrics,
) chi.Router {
	r := chi.NewRouter()

	if m != nil {
		r.Use(requestDuration(m))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	airlines.Register(r)
	pilots.Register(r)
	flights.Register(r)

	return r
}

// requestDuration records per-route request latency. The route pattern is
// read after serving so parameterized paths collapse into one label value.
func requestDuration(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = "unmatched"
			}
			m.RequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
		})
	}
}
