package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names exposed by the scheduler.
const (
	MetricScheduleRequests       = "slotwise_schedule_requests_total"
	MetricClassifierCalls        = "slotwise_classifier_calls_total"
	MetricClassifierCallDuration = "slotwise_classifier_call_duration_seconds"
	MetricCircuitBreakerState    = "slotwise_circuit_breaker_state"
)

// Classifier call outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeCircuitOpen = "circuit_open"
)

// CircuitState mirrors the breaker states as gauge values.
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

// SchedulerMetrics records scheduling outcomes and classifier calls.
// A nil *SchedulerMetrics is valid and records nothing.
type SchedulerMetrics struct {
	scheduleRequests *prometheus.CounterVec
	classifierCalls  *prometheus.CounterVec
	classifierTime   *prometheus.HistogramVec
	circuitState     *prometheus.GaugeVec
}

// NewSchedulerMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewSchedulerMetrics(reg prometheus.Registerer) *SchedulerMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &SchedulerMetrics{
		scheduleRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricScheduleRequests,
				Help: "Smart scheduling requests by resolution method",
			},
			[]string{"method"},
		),
		classifierCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricClassifierCalls,
				Help: "Classifier provider calls by outcome",
			},
			[]string{"provider", "outcome"},
		),
		classifierTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricClassifierCallDuration,
				Help:    "Duration of classifier provider calls",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"provider"},
		),
		circuitState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricCircuitBreakerState,
				Help: "Circuit breaker state: 0=closed, 1=open, 2=half-open",
			},
			[]string{"provider"},
		),
	}

	reg.MustRegister(
		m.scheduleRequests,
		m.classifierCalls,
		m.classifierTime,
		m.circuitState,
	)

	return m
}

// RecordSchedule counts a scheduling request resolved by method
// ("keyword", "llm" or "unresolved").
func (m *SchedulerMetrics) RecordSchedule(method string) {
	if m == nil {
		return
	}
	m.scheduleRequests.WithLabelValues(method).Inc()
}

// RecordClassifierCall counts one provider call and its duration.
func (m *SchedulerMetrics) RecordClassifierCall(provider, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.classifierCalls.WithLabelValues(provider, outcome).Inc()
	if outcome != OutcomeCircuitOpen {
		m.classifierTime.WithLabelValues(provider).Observe(duration.Seconds())
	}
}

// SetCircuitState publishes the breaker state of a provider.
func (m *SchedulerMetrics) SetCircuitState(provider string, state CircuitState) {
	if m == nil {
		return
	}
	m.circuitState.WithLabelValues(provider).Set(float64(state))
}

// WriteTextfile dumps every metric gathered by g to path in the
// node_exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
