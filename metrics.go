package dfa

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Minimizer.
type Metrics struct {
	RunsTotal         prometheus.Counter
	InvalidLinesTotal prometheus.Counter
	RefinementRounds  prometheus.Histogram
	ReachableStates   prometheus.Histogram
	MinimizedStates   prometheus.Histogram
	RemovedStates     prometheus.Histogram
}

var stateBuckets = []float64{1, 2, 4, 8, 16, 32, 64, 128, 256}

// NewMetrics Creates the collectors and registers them with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dfamin_runs_total",
			Help: "Total number of minimization runs",
		}),
		InvalidLinesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dfamin_invalid_lines_total",
			Help: "Total number of skipped transition lines",
		}),
		RefinementRounds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfamin_refinement_rounds",
			Help:    "Number of splitting refinement rounds per run",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		ReachableStates: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfamin_reachable_states",
			Help:    "Number of reachable states of the input automaton",
			Buckets: stateBuckets,
		}),
		MinimizedStates: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfamin_minimized_states",
			Help:    "Number of states of the minimized automaton",
			Buckets: stateBuckets,
		}),
		RemovedStates: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dfamin_unreachable_states",
			Help:    "Number of states dropped as unreachable",
			Buckets: stateBuckets,
		}),
	}
}

func (m *Metrics) observe(r *Report, parsedStates int) {
	m.RunsTotal.Inc()
	m.InvalidLinesTotal.Add(float64(len(r.Invalid)))
	m.RefinementRounds.Observe(float64(r.Rounds))
	m.ReachableStates.Observe(float64(r.ReachableStates))
	m.MinimizedStates.Observe(float64(r.MinimizedStates))
	m.RemovedStates.Observe(float64(parsedStates - r.ReachableStates))
}
