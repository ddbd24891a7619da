package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeInvalid     = "invalid"
	OutcomeFailure     = "failure"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkspot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_reservations_total",
			Help: "Reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	ReservationReleasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkspot_reservation_releases_total",
			Help: "Total number of ended reservations",
		},
	)

	TxRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkspot_tx_retries_total",
			Help: "Transactions retried after serialization failure or deadlock",
		},
	)

	SpotCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_spot_cache_total",
			Help: "Spot list cache lookups by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(outcome string) {
	ReservationsTotal.WithLabelValues(outcome).Inc()
}

func RecordRelease() {
	ReservationReleasesTotal.Inc()
}

func RecordTxRetry() {
	TxRetriesTotal.Inc()
}

func RecordCacheLookup(hit bool) {
	if hit {
		SpotCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	SpotCacheTotal.WithLabelValues("miss").Inc()
}
