// Package limitmetrics exports limit evaluation outcomes as Prometheus metrics.
package limitmetrics

import (
	"fmt"

	"github.com/aryangodara/limits"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts evaluations per limit and state.
type Recorder struct {
	evaluations   *prometheus.CounterVec
	shortCircuits *prometheus.CounterVec
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "limits",
			Name:      "evaluations_total",
			Help:      "Limit evaluations by final state.",
		}, []string{"limit", "state"}),
		shortCircuits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "limits",
			Name:      "short_circuits_total",
			Help:      "Evaluations stopped by a condition that did not hold.",
		}, []string{"limit"}),
	}

	for _, c := range []prometheus.Collector{r.evaluations, r.shortCircuits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register limit metrics: %w", err)
		}
	}
	return r, nil
}

// Override returns an evaluation override that records the outcome of next
// (or the proposed outcome when next is nil) and returns it unchanged.
func (r *Recorder) Override(next limits.OverrideFunc) limits.OverrideFunc {
	return func(proposed bool, l *limits.Limit, failing limits.Condition) bool {
		result := proposed
		if next != nil {
			result = next(proposed, l, failing)
		}

		if failing != nil {
			r.shortCircuits.WithLabelValues(l.Name()).Inc()
		}
		state := limits.Falsy
		if result {
			state = limits.Truthy
		}
		r.evaluations.WithLabelValues(l.Name(), state.String()).Inc()

		return result
	}
}
