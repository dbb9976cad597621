package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hirechain",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hirechain",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	verificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hirechain",
			Name:      "payment_verifications_total",
			Help:      "Payment verification attempts by outcome",
		},
		[]string{"outcome"},
	)

	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hirechain",
			Name:      "job_submissions_total",
			Help:      "Job submission attempts by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(verificationsTotal)
	prometheus.MustRegister(submissionsTotal)
}

// Middleware records request count and duration per route pattern.
func Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()

		httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()

		return err
	}
}

// ObserveVerification counts one payment verification outcome
// (matched, rejected, unconfirmed, lookup_failed).
func ObserveVerification(outcome string) {
	verificationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSubmission counts one job submission result
// (created, validation_error, duplicate, payment_rejected, ledger_unavailable, error).
func ObserveSubmission(result string) {
	submissionsTotal.WithLabelValues(result).Inc()
}
