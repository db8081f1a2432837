package structlog

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	svc, _ := newCaptureService(WithMetrics(m), WithMinimumLevel(LevelInformation))

	svc.Debug("filtered")
	svc.Information("one")
	svc.Information("two")
	svc.Error("three")
	require.NoError(t, svc.Close())
	svc.Error("late")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.written.WithLabelValues("Information")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.written.WithLabelValues("Error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dropped.WithLabelValues(dropReasonClosed)))

	// filtered events are not counted as dropped
	assert.Equal(t, 3, testutil.CollectAndCount(m.written)+testutil.CollectAndCount(m.dropped))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"structlog_events_written_total", "structlog_events_dropped_total"}, names)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.eventWritten(LevelInformation)
		m.eventDropped(dropReasonBind)
	})
}
