package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Persisted submissions by section
	Submissions *prometheus.CounterVec

	// Rejected submissions by section (validation failures, nothing persisted)
	ValidationFailures *prometheus.CounterVec

	// Report endpoint hits
	ReportRequests prometheus.Counter

	// HTTP request latency by route
	RequestLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "uxstudy_submissions_total",
			Help: "Total questionnaire submissions persisted, by section",
		}, []string{"section"}), // section: "consent", "demographic", "task", "exit"

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "uxstudy_validation_failures_total",
			Help: "Total submissions rejected by validation, by section",
		}, []string{"section"}),

		ReportRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uxstudy_report_requests_total",
			Help: "Total report views served",
		}),

		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "uxstudy_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
	}
}

// IncrementSubmissions records one persisted submission for a section.
func (m *Metrics) IncrementSubmissions(section string) {
	if m != nil {
		m.Submissions.WithLabelValues(section).Inc()
	}
}

// IncrementValidationFailures records one rejected submission for a section.
func (m *Metrics) IncrementValidationFailures(section string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(section).Inc()
	}
}

// IncrementReportRequests records one report view.
func (m *Metrics) IncrementReportRequests() {
	if m != nil {
		m.ReportRequests.Inc()
	}
}

// ObserveRequestLatency records the duration of one HTTP request.
func (m *Metrics) ObserveRequestLatency(route string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}
