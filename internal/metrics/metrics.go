package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymapp_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PassPurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_pass_purchases_total",
			Help: "Total number of pending pass purchases created",
		},
		[]string{"pass_type"},
	)

	PaymentConfirmationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_payment_confirmations_total",
			Help: "Total number of successful payment confirmations",
		},
		[]string{"source"},
	)

	WebhookSignatureFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymapp_webhook_signature_failures_total",
			Help: "Total number of webhook deliveries rejected for a bad signature",
		},
	)

	GatewayErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymapp_gateway_errors_total",
			Help: "Total number of failed payment gateway calls",
		},
	)

	PassValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_pass_validations_total",
			Help: "Total number of staff-side pass validations",
		},
		[]string{"outcome"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymapp_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPassPurchase(passType string) {
	PassPurchasesTotal.WithLabelValues(passType).Inc()
}

// RecordPaymentConfirmation records a succeeded transition; source is
// "confirm" for the client callback and "webhook" for provider delivery.
func RecordPaymentConfirmation(source string) {
	PaymentConfirmationsTotal.WithLabelValues(source).Inc()
}

func RecordWebhookSignatureFailure() {
	WebhookSignatureFailuresTotal.Inc()
}

func RecordGatewayError() {
	GatewayErrorsTotal.Inc()
}

func RecordPassValidation(outcome string) {
	PassValidationsTotal.WithLabelValues(outcome).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
