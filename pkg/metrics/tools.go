package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ToolMetrics records per-tool invocation counts and latency.
type ToolMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewToolMetrics registers the tool metrics on the provided registerer.
func NewToolMetrics(reg prometheus.Registerer) *ToolMetrics {
	if reg == nil {
		return &ToolMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tool_duration_seconds",
		Help:    "Duration of tool invocations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"tool"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tool_success",
		Help: "Successful tool invocations.",
	}, []string{"tool"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tool_failure",
		Help: "Failed tool invocations.",
	}, []string{"tool"})
	reg.MustRegister(duration, success, failure)
	return &ToolMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named tool.
func (t *ToolMetrics) ObserveDuration(tool string, duration time.Duration) {
	if t == nil || t.duration == nil {
		return
	}
	t.duration.WithLabelValues(normalizeLabel(tool)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named tool.
func (t *ToolMetrics) IncSuccess(tool string) {
	if t == nil || t.success == nil {
		return
	}
	t.success.WithLabelValues(normalizeLabel(tool)).Inc()
}

// IncFailure increments the failure counter for the named tool.
func (t *ToolMetrics) IncFailure(tool string) {
	if t == nil || t.failure == nil {
		return
	}
	t.failure.WithLabelValues(normalizeLabel(tool)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
