package metrics

import (
	"fitclub/internal/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SchedulingOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_scheduling_operations_total",
			Help: "Scheduling operations by outcome",
		},
		[]string{"operation", "result"},
	)

	SchedulingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_scheduling_conflicts_total",
			Help: "Rejected scheduling requests by conflict kind",
		},
		[]string{"kind"},
	)

	EnrollmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_enrollments_total",
			Help: "Total number of successful class enrollments",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordOperation counts one scheduling call. err's taxonomy code becomes the
// result label; conflict kinds are also counted separately.
func RecordOperation(operation string, err error) {
	code := apperror.Code(err)
	SchedulingOperationsTotal.WithLabelValues(operation, code).Inc()
	if apperror.IsConflict(err) {
		SchedulingConflictsTotal.WithLabelValues(code).Inc()
	}
}

func RecordEnrollment() {
	EnrollmentsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}
