package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelier",
			Name:      "booking_created_total",
			Help:      "Count of reservations created by room category.",
		},
		[]string{"category"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelier",
			Name:      "booking_cancelled_total",
			Help:      "Count of reservations cancelled.",
		},
	)

	searches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelier",
			Name:      "search_total",
			Help:      "Count of availability searches.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingCancelled, searches)
	})
}

func IncBookingCreated(category string) {
	bookingCreated.WithLabelValues(category).Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncSearch() {
	searches.Inc()
}
