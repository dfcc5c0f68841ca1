package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerMetrics_RecordSchedule(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSchedulerMetrics(reg)

	m.RecordSchedule("keyword")
	m.RecordSchedule("keyword")
	m.RecordSchedule("unresolved")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.scheduleRequests.WithLabelValues("keyword")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scheduleRequests.WithLabelValues("unresolved")))
}

func TestSchedulerMetrics_ClassifierCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSchedulerMetrics(reg)

	m.RecordClassifierCall("groq", OutcomeSuccess, 200*time.Millisecond)
	m.RecordClassifierCall("groq", OutcomeError, time.Second)
	m.RecordClassifierCall("groq", OutcomeCircuitOpen, 0)
	m.SetCircuitState("groq", CircuitOpen)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.classifierCalls.WithLabelValues("groq", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.classifierCalls.WithLabelValues("groq", OutcomeCircuitOpen)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitState.WithLabelValues("groq")))

	// one histogram series for the provider
	count, err := testutil.GatherAndCount(reg, MetricClassifierCallDuration)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSchedulerMetrics_NilIsNoop(t *testing.T) {
	var m *SchedulerMetrics

	assert.NotPanics(t, func() {
		m.RecordSchedule("keyword")
		m.RecordClassifierCall("groq", OutcomeSuccess, time.Second)
		m.SetCircuitState("groq", CircuitClosed)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSchedulerMetrics(reg)
	m.RecordSchedule("llm")

	path := filepath.Join(t.TempDir(), "slotwise.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `slotwise_schedule_requests_total{method="llm"} 1`)
}
