package structlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts written and dropped events. A nil *Metrics records nothing.
type Metrics struct {
	written *prometheus.CounterVec
	dropped *prometheus.CounterVec
}

// NewMetrics registers the counters with reg. A nil reg creates unregistered
// counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		written: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "structlog_events_written_total",
			Help: "Total number of events dispatched to the sink",
		}, []string{"level"}), // level: Verbose ... Fatal
		dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "structlog_events_dropped_total",
			Help: "Total number of enabled events that were not dispatched",
		}, []string{"reason"}), // reason: bind, panic, closed
	}
}

func (m *Metrics) eventWritten(level Level) {
	if m == nil {
		return
	}
	m.written.WithLabelValues(level.String()).Inc()
}

func (m *Metrics) eventDropped(reason string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(reason).Inc()
}
