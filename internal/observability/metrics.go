// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons recorded when an event produces no alert.
const (
	SkipSourceIgnored  = "source_ignored"
	SkipNoBuy          = "no_buy"
	SkipNoPayment      = "no_payment"
	SkipBelowThreshold = "below_threshold"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Ingress metrics
	WebhookRequests      prometheus.Counter
	UnauthorizedRequests prometheus.Counter
	MalformedPayloads    prometheus.Counter
	EventsReceived       prometheus.Counter

	// Detection metrics
	EventsSkipped *prometheus.CounterVec
	BuysDetected  prometheus.Counter

	// Delivery metrics
	AlertsSent        prometheus.Counter
	DeliveryErrors    prometheus.Counter
	DeliveryDuration  prometheus.Histogram
	PriceLookupErrors prometheus.Counter
	PriceLookupTime   prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with all metrics registered on
// the default registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "buy_alerts"
	}

	return &Metrics{
		WebhookRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingress",
			Name:      "webhook_requests_total",
			Help:      "Total number of webhook requests received",
		}),
		UnauthorizedRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingress",
			Name:      "unauthorized_requests_total",
			Help:      "Total number of webhook requests rejected by the auth check",
		}),
		MalformedPayloads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingress",
			Name:      "malformed_payloads_total",
			Help:      "Total number of webhook bodies that were not an object or array",
		}),
		EventsReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingress",
			Name:      "events_received_total",
			Help:      "Total number of normalized events entering the pipeline",
		}),

		EventsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "events_skipped_total",
			Help:      "Total number of events producing no alert, by reason",
		}, []string{"reason"}),
		BuysDetected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "detect",
			Name:      "buys_detected_total",
			Help:      "Total number of qualifying buy candidates detected",
		}),

		AlertsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "delivery",
			Name:      "alerts_sent_total",
			Help:      "Total number of alerts delivered",
		}),
		DeliveryErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "delivery",
			Name:      "errors_total",
			Help:      "Total number of failed alert deliveries",
		}),
		DeliveryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "delivery",
			Name:      "duration_seconds",
			Help:      "Alert delivery duration",
			Buckets:   prometheus.DefBuckets,
		}),
		PriceLookupErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "price",
			Name:      "lookup_errors_total",
			Help:      "Total number of failed price lookups",
		}),
		PriceLookupTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "price",
			Name:      "lookup_duration_seconds",
			Help:      "Price lookup duration",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
