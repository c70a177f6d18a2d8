package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the registry.
type Metrics struct {
	FlightsCreated   prometheus.Counter
	FlightsStarted   prometheus.Counter
	FlightsCancelled prometheus.Counter
	FaultsCount      *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// NewMetrics creates new prometheus metrics.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FlightsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_created_total",
			Help:      "The total number of flights scheduled",
		}),
		FlightsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_started_total",
			Help:      "The total number of flights started",
		}),
		FlightsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_cancelled_total",
			Help:      "The total number of flights cancelled",
		}),
		FaultsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "The total number of rejected operations",
		}, []string{"operation"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
