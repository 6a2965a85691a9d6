// Invariants are conditions in code that must hold; otherwise, there is a bug in code.
// Typical examples in this module are the link rules of the lists: a node's `prev` must point at the node whose
// `next` points at it, and the tail must be the last node reachable from the head.
// Raising an invariant records an error log and increments a monitoring counter instead of crashing the program.
// It is still up to the caller to handle the erroneous case, e.g. by repairing the state or returning early.
//
// Do not use invariants for conditions that depend on the caller's input; an out of range index is an error
// returned to the caller, not an invariant violation.

package utils

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	promclient "github.com/prometheus/client_model/go"
)

var invariantsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invariants_total",
	Help: "The total number of invariant violations",
}, []string{
	"module", // The module in which this invariant occurred.
	"type",   // The type of the invariant that occurred.
})

// RaiseInvariant reports a violated invariant of `module`. Builds with the test mode flag panic instead.
func RaiseInvariant(module, invariantType, msg string, args ...any) {
	invariantsMetric.WithLabelValues(module, invariantType).Inc()
	slog.With("invariant", invariantType, "module", module).Error(msg, args...)
	if IsTestMode {
		panic("invariant violated: " + invariantType)
	}
}

// GetMetricValue returns the current value of invariant metric with labels `module` and `invariantType`.
func GetMetricValue(module, invariantType string) int {
	var metric = &promclient.Metric{}
	if err := invariantsMetric.WithLabelValues(module, invariantType).Write(metric); err != nil {
		slog.Error("Failed to read invariant metric.", "error", err)
		return 0
	}
	return int(metric.Counter.GetValue())
}
