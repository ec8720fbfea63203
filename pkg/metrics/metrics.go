package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Collection metrics
	EntitiesTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cookshow_entities_total",
			Help: "Total number of stored documents by collection",
		},
		[]string{"collection"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookshow_api_requests_total",
			Help: "Total number of API requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cookshow_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cookshow_api_requests_in_flight",
			Help: "Number of API requests currently being served",
		},
	)

	RateLimitRejects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cookshow_rate_limit_rejects_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	PanicRecoveries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cookshow_panic_recoveries_total",
			Help: "Total number of handler panics recovered",
		},
	)

	// Event metrics
	EventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookshow_events_total",
			Help: "Total number of domain events published by type",
		},
		[]string{"type"},
	)

	// Storage metrics
	StorageOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cookshow_storage_operation_duration_seconds",
			Help:    "Storage operation duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(EntitiesTotal)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(APIRequestsInFlight)
	prometheus.MustRegister(RateLimitRejects)
	prometheus.MustRegister(PanicRecoveries)
	prometheus.MustRegister(EventsTotal)
	prometheus.MustRegister(StorageOperationDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
