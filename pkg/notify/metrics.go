package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// deliveredTotal counts notifications handed to the notifier successfully.
	deliveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfers_notifications_delivered_total",
		Help: "Total number of notifications delivered",
	})

	// failedTotal counts notifier delivery failures (absorbed, not surfaced).
	failedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfers_notifications_failed_total",
		Help: "Total number of notification delivery failures",
	})

	// droppedTotal counts events dropped because the buffer was full.
	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfers_notifications_dropped_total",
		Help: "Total number of notifications dropped on a full buffer",
	})

	// queueDepth tracks the number of events waiting in the buffer.
	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "transfers_notification_queue_depth",
		Help: "Current number of queued notification events",
	})
)
