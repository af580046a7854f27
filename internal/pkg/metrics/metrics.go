package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	KindReserved = "reserved"
	KindPinned   = "pinned"

	ResultSuccess  = "success"
	ResultFailed   = "failed"
	ResultNotFound = "not_found"
	ResultNoop     = "noop"

	OutcomeCreated = "created"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"

	DeliverySent    = "sent"
	DeliveryRetried = "retried"
	DeliveryParked  = "parked"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stadium_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stadium_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stadium_reservations_created_total",
			Help: "Total number of reservations created",
		},
		[]string{"kind"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stadium_reservation_cancellations_total",
			Help: "Total number of cancellation requests by result",
		},
		[]string{"result"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stadium_follower_notifications_total",
			Help: "Total number of follower notifications by result",
		},
		[]string{"result"},
	)

	RollerInstancesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stadium_roller_instances_total",
			Help: "Pinned instances handled by the weekly roller",
		},
		[]string{"outcome"},
	)

	MailDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stadium_mail_deliveries_total",
			Help: "SMTP delivery attempts by result",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(kind string) {
	ReservationsCreatedTotal.WithLabelValues(kind).Inc()
}

func RecordCancellation(result string) {
	CancellationsTotal.WithLabelValues(result).Inc()
}

func RecordNotification(result string) {
	NotificationsTotal.WithLabelValues(result).Inc()
}

func RecordRollerOutcome(outcome string, n int) {
	if n <= 0 {
		return
	}
	RollerInstancesTotal.WithLabelValues(outcome).Add(float64(n))
}

func RecordMailDelivery(result string) {
	MailDeliveriesTotal.WithLabelValues(result).Inc()
}
