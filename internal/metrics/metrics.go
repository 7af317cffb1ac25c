package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ampedent",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by handler and status code.",
		},
		[]string{"handler", "code"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ampedent",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by visitors.",
		},
	)

	adminDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ampedent",
			Name:      "admin_decision_total",
			Help:      "Count of admin decisions over bookings.",
		},
		[]string{"action"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingCreated, adminDecision)
	})
}

func IncHTTP(handler, code string) {
	httpRequests.WithLabelValues(handler, code).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncAdminDecision(action string) {
	adminDecision.WithLabelValues(action).Inc()
}
