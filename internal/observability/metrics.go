// Package observability exposes Prometheus counters for processed workout records.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts processed and failed records. A nil *Metrics records nothing.
type Metrics struct {
	processed *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Subsystem: "records",
			Name:      "processed_total",
			Help:      "Workout records summarised successfully, by workout type.",
		}, []string{"type"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Subsystem: "records",
			Name:      "failed_total",
			Help:      "Workout records that could not be summarised, by failure reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.processed, m.failed)
	return m
}

// RecordProcessed counts one summarised record of the given workout type
func (m *Metrics) RecordProcessed(workoutType string) {
	if m == nil {
		return
	}
	m.processed.WithLabelValues(workoutType).Inc()
}

// RecordFailed counts one failed record
func (m *Metrics) RecordFailed(reason string) {
	if m == nil {
		return
	}
	m.failed.WithLabelValues(reason).Inc()
}
