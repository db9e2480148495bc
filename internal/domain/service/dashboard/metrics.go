package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultApplied = "applied"
	resultFailed  = "failed"
	resultStale   = "stale"
)

type Metrics struct {
	fetches *prometheus.CounterVec
	alerts  prometheus.Counter
	items   prometheus.Gauge
}

// NewMetrics registers the dashboard collectors; a nil registerer keeps them private.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	factory := promauto.With(reg)

	return &Metrics{
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pet_market",
			Subsystem: "dashboard",
			Name:      "fetches_total",
			Help:      "Backend fetches by operation and outcome.",
		}, []string{"operation", "result"}),
		alerts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pet_market",
			Subsystem: "dashboard",
			Name:      "alerts_total",
			Help:      "Price deviation alerts raised.",
		}),
		items: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pet_market",
			Subsystem: "dashboard",
			Name:      "items",
			Help:      "Items held from the last accepted fetch.",
		}),
	}
}
