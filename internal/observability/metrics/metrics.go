// Package metrics exposes Prometheus instrumentation for the scheduling
// agent. Metrics structs are injected where needed and register against the
// supplied Registerer; all observation methods are nil-safe so wiring stays
// optional in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AgentMetrics covers routing decisions, tool executions, the agent loop,
// and bookings.
type AgentMetrics struct {
	routingTotal   *prometheus.CounterVec
	toolTotal      *prometheus.CounterVec
	toolLatency    *prometheus.HistogramVec
	loopOutcomes   *prometheus.CounterVec
	loopIterations prometheus.Histogram
	bookingsTotal  prometheus.Counter
}

func NewAgentMetrics(reg prometheus.Registerer) *AgentMetrics {
	m := &AgentMetrics{
		routingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "harbor",
			Subsystem: "routing",
			Name:      "decisions_total",
			Help:      "Routing decisions by target agent and fallback use",
		}, []string{"agent", "fallback"}),
		toolTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "harbor",
			Subsystem: "tools",
			Name:      "executions_total",
			Help:      "Tool executions by tool name and outcome",
		}, []string{"tool", "status"}),
		toolLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "harbor",
			Subsystem: "tools",
			Name:      "latency_seconds",
			Help:      "Latency of tool executions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		loopOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "harbor",
			Subsystem: "agent",
			Name:      "loop_outcomes_total",
			Help:      "Agent loop terminations by outcome",
		}, []string{"agent", "outcome"}),
		loopIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "harbor",
			Subsystem: "agent",
			Name:      "loop_iterations",
			Help:      "Model round-trips used per agent turn",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10},
		}),
		bookingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "harbor",
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Appointments booked through the agent",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.routingTotal, m.toolTotal, m.toolLatency, m.loopOutcomes, m.loopIterations, m.bookingsTotal)
	return m
}

func (m *AgentMetrics) RecordRoutingDecision(agent string, fallback bool) {
	if m == nil {
		return
	}
	label := "false"
	if fallback {
		label = "true"
	}
	m.routingTotal.WithLabelValues(agent, label).Inc()
}

// RecordToolExecution implements the tool dispatcher's Recorder interface.
func (m *AgentMetrics) RecordToolExecution(tool string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "error"
	if success {
		status = "ok"
	}
	m.toolTotal.WithLabelValues(tool, status).Inc()
	m.toolLatency.WithLabelValues(tool).Observe(duration.Seconds())
}

func (m *AgentMetrics) RecordLoopOutcome(agent, outcome string, iterations int) {
	if m == nil {
		return
	}
	m.loopOutcomes.WithLabelValues(agent, outcome).Inc()
	m.loopIterations.Observe(float64(iterations))
}

func (m *AgentMetrics) RecordBooking() {
	if m == nil {
		return
	}
	m.bookingsTotal.Inc()
}
