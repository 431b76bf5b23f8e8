// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the reservation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourdesk_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tourdesk_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	reservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tourdesk_reservations_created_total",
		Help: "Count of reservations created",
	})

	reservationStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourdesk_reservation_status_changes_total",
		Help: "Count of reservation status transitions by target status",
	}, []string{"status"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveReservationCreated increments the reservation creation counter.
func ObserveReservationCreated() {
	reservationsCreated.Inc()
}

// ObserveStatusChange increments the transition counter for the target status.
func ObserveStatusChange(status string) {
	reservationStatusChanges.WithLabelValues(status).Inc()
}
