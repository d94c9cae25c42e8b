// Package metrics defines and registers all custom Prometheus metrics
// for the recognition API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recognition"

// RecognitionsSentTotal counts recognitions created.
// Label:
//   - visibility: PUBLIC, PRIVATE or ANONYMOUS
var RecognitionsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sent_total",
		Help:      "Total number of recognitions sent, by visibility.",
	},
	[]string{"visibility"},
)

// RecognitionsDeletedTotal counts recognitions removed.
var RecognitionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of recognitions deleted.",
	},
)

// NotificationsCreatedTotal counts in-app notifications stored for
// recipients.
var NotificationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of in-app notifications created.",
	},
)

// AuthorizationDeniedTotal counts operations rejected as 401 or 403.
// Label:
//   - path: the matched route (e.g. "/v1/analytics")
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"path"},
)

// WebhookDeliveriesTotal counts external webhook deliveries.
// Label:
//   - result: "ok", "error" or "skipped"
var WebhookDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_deliveries_total",
		Help:      "Total number of external webhook delivery attempts, by result.",
	},
	[]string{"result"},
)

// BusEventsPublishedTotal counts events published on the in-process bus.
// Label:
//   - event: event name (e.g. "recognition.received")
var BusEventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bus_events_published_total",
		Help:      "Total number of events published on the in-process bus, by event name.",
	},
	[]string{"event"},
)

// BusEventsDroppedTotal counts events dropped because a subscriber's
// buffer was full.
// Label:
//   - event: event name
var BusEventsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bus_events_dropped_total",
		Help:      "Total number of events dropped due to a full subscriber buffer, by event name.",
	},
	[]string{"event"},
)
