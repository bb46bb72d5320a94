package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	updatesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "baby_bot",
		Subsystem: "updates",
		Name:      "received_total",
		Help:      "Number of chat updates received, by kind.",
	}, []string{"kind"})

	handlerErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "baby_bot",
		Subsystem: "handlers",
		Name:      "errors_total",
		Help:      "Number of handler failures, by handler name.",
	}, []string{"handler"})

	remindersSentCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "baby_bot",
		Subsystem: "reminders",
		Name:      "sent_total",
		Help:      "Number of reminder messages delivered.",
	})
)

func init() {
	prometheus.MustRegister(updatesCounter, handlerErrorCounter, remindersSentCounter)
}

// RecordUpdate counts one received update of the given kind.
func RecordUpdate(kind string) {
	updatesCounter.WithLabelValues(kind).Inc()
}

// RecordHandlerError counts one failed handler invocation.
func RecordHandlerError(handler string) {
	handlerErrorCounter.WithLabelValues(handler).Inc()
}

// RecordReminderSent counts one delivered reminder.
func RecordReminderSent() {
	remindersSentCounter.Inc()
}
