// Package metrics exposes Prometheus counters for the monitoring pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "tailwatch_"

// Metrics holds the pipeline counters. Register once at startup.
type Metrics struct {
	EventsReceived    prometheus.Counter
	EventsIgnored     prometheus.Counter
	Duplicates        prometheus.Counter
	Notified          prometheus.Counter
	DeliveryFailures  prometheus.Counter
	AnalysisFallbacks prometheus.Counter
	EventsFailed      prometheus.Counter
}

// New creates and registers the pipeline counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "events_received_total",
			Help: "Exceptional events accepted for processing",
		}),
		EventsIgnored: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "events_ignored_total",
			Help: "Events dropped by the noise filter",
		}),
		Duplicates: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "duplicates_suppressed_total",
			Help: "Events suppressed as duplicates within the window",
		}),
		Notified: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "notifications_sent_total",
			Help: "Notifications successfully delivered",
		}),
		DeliveryFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "delivery_failures_total",
			Help: "Notification deliveries that failed",
		}),
		AnalysisFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "analysis_fallbacks_total",
			Help: "Notifications sent with the fallback analysis text",
		}),
		EventsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "events_failed_total",
			Help: "Events aborted by a fatal per-event failure",
		}),
	}
}
