package algorithms

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// Statistics tracks per-generation best/worst/average fitness for
// convergence reporting and drives stall detection. Only the latest snapshot
// is retained internally; history belongs to the caller, one snapshot per
// sampled generation.
type Statistics struct {
	latest     framework.StatisticsSnapshot
	bestMetric float64
	observed   bool
	stalled    int
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

// Record computes the per-objective aggregates for one generation and
// returns the snapshot.
func (st *Statistics) Record(iteration int, stats []*framework.IndividualStats) framework.StatisticsSnapshot {
	arity := len(stats[0].Fitness)
	snap := framework.StatisticsSnapshot{
		Iteration: iteration,
		Best:      make(framework.FitnessVector, arity),
		Worst:     make(framework.FitnessVector, arity),
		Mean:      make(framework.FitnessVector, arity),
	}

	column := make([]float64, len(stats))
	for d := 0; d < arity; d++ {
		for i, s := range stats {
			column[i] = s.Fitness[d]
		}
		snap.Best[d] = floats.Min(column)
		snap.Worst[d] = floats.Max(column)
		snap.Mean[d] = stat.Mean(column, nil)
	}

	snap.BestMetric = snap.Best[0]
	st.latest = snap
	return snap
}

// ObserveSample feeds the tracked best metric of one sampled generation and
// returns how many consecutive sampled generations it has gone unchanged.
// The first observation never counts as a stall.
func (st *Statistics) ObserveSample(metric float64) int {
	if st.observed && metric == st.bestMetric {
		st.stalled++
	} else {
		st.stalled = 0
	}
	st.bestMetric = metric
	st.observed = true
	return st.stalled
}

// Latest returns the most recently recorded snapshot.
func (st *Statistics) Latest() framework.StatisticsSnapshot {
	return st.latest
}
