// Package metrics defines and registers all custom Prometheus metrics for
// the studio API. It is the single source of truth for metric names, labels,
// and help strings. promauto registers everything with the default registry
// at init time; the router exposes it on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// RequestsSubmittedTotal counts service requests created through the public
// form, by service type.
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_requests_submitted_total",
		Help:      "Total number of service requests submitted, by service type.",
	},
	[]string{"service_type"},
)

// ContactMessagesTotal counts contact messages created through the public form.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages submitted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// NotificationsTotal counts notification delivery outcomes.
// Labels:
//   - kind: "service_request" or "contact_message"
//   - result: "sent", "error" or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification deliveries, by kind and result.",
	},
	[]string{"kind", "result"},
)

// NotificationsQueueDepth tracks the number of notifications waiting in the
// dispatcher buffer.
var NotificationsQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in the dispatcher buffer.",
	},
)
