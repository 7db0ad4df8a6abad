package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the reservations service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	SearchesTotal    prometheus.CounterVec
	BookingsTotal    prometheus.CounterVec
	SeatsSoldTotal   prometheus.Counter
	BookingConflicts prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyfare_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skyfare_http_request_duration_seconds",
				Help:    "HTTP request duration by endpoint and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skyfare_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
			[]string{"endpoint"},
		),
		SearchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyfare_searches_total",
				Help: "Flight searches by outcome code",
			},
			[]string{"outcome"},
		),
		BookingsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skyfare_bookings_total",
				Help: "Booking attempts by kind (single, round_trip) and result",
			},
			[]string{"kind", "result"},
		),
		SeatsSoldTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skyfare_seats_sold_total",
				Help: "Seats decremented from ledgers by successful bookings",
			},
		),
		BookingConflicts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skyfare_booking_conflicts_total",
				Help: "Bookings rejected because the ledger had too few seats",
			},
		),
	}
}
