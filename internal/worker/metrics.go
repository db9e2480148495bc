package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ClockMetrics struct {
	state         prometheus.Gauge
	secondsLeft   prometheus.Gauge
	statusFailure prometheus.Counter
}

// NewClockMetrics registers the clock collectors; a nil registerer keeps them private.
func NewClockMetrics(reg prometheus.Registerer) *ClockMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	factory := promauto.With(reg)

	return &ClockMetrics{
		state: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pet_market",
			Subsystem: "update_clock",
			Name:      "state",
			Help:      "0 unknown, 1 counting, 2 overdue.",
		}),
		secondsLeft: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pet_market",
			Subsystem: "update_clock",
			Name:      "seconds_remaining",
			Help:      "Seconds until the backend refreshes its data.",
		}),
		statusFailure: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pet_market",
			Subsystem: "update_clock",
			Name:      "status_failures_total",
			Help:      "Failed status polls.",
		}),
	}
}
