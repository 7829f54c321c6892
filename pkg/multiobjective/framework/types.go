package framework

import (
	"math"
	"time"
)

// FitnessVector holds one objective value per dimension for a single
// individual. Lower is better in every dimension, and the length is fixed
// for the whole run.
type FitnessVector []float64

func (f FitnessVector) Clone() FitnessVector {
	out := make(FitnessVector, len(f))
	copy(out, f)
	return out
}

// WorstFitness returns the sentinel vector a problem domain substitutes for
// an individual whose evaluation failed, so the generation can proceed.
// Every component is +Inf, the worst possible value under minimization.
func WorstFitness(arity int) FitnessVector {
	out := make(FitnessVector, arity)
	for i := range out {
		out[i] = math.Inf(1)
	}
	return out
}

// Individual is one candidate solution. The engine never inspects what it
// represents; it only needs the ability to clone it.
type Individual interface {
	Clone() Individual
}

// IndividualStats is the generation-local record the engine keeps for one
// population member. DominatedByCount is the number of same-generation
// members whose fitness vector dominates this one. CrowdingDistance is reset
// to zero each generation before recomputation; +Inf is a valid, present
// value and never means "unset".
type IndividualStats struct {
	Index            int
	Fitness          FitnessVector
	Individual       Individual
	DominatedByCount int
	CrowdingDistance float64
}

// NewIndividualStats builds the record problem domains return from fitness
// evaluation.
func NewIndividualStats(index int, fitness FitnessVector, individual Individual) *IndividualStats {
	return &IndividualStats{
		Index:      index,
		Fitness:    fitness,
		Individual: individual,
	}
}

// Clone deep-copies the record, including the owned individual, so that
// later mutation of the copy cannot reach the original.
func (s *IndividualStats) Clone() *IndividualStats {
	return &IndividualStats{
		Index:            s.Index,
		Fitness:          s.Fitness.Clone(),
		Individual:       s.Individual.Clone(),
		DominatedByCount: s.DominatedByCount,
		CrowdingDistance: s.CrowdingDistance,
	}
}

// Front is an ordered set of individuals sharing one rank. Rank 0 is the
// Pareto-optimal front; ranks are contiguous.
type Front []*IndividualStats

// ObjectiveSpacePoint represents an N-dimensional point in the objective
// space. As an example, for a problem with 2 objective functions f1 and f2,
// a point in the objective space could be [f1(x'), f2(x')], for the input
// of x'.
type ObjectiveSpacePoint []float64

// GenerationSnapshot captures one reported generation. It is immutable once
// emitted and not retained by the engine.
type GenerationSnapshot struct {
	Iteration int
	Fronts    []Front
	Elapsed   time.Duration
}

// StatisticsSnapshot carries per-generation aggregate fitness values, one
// entry per objective dimension, plus the tracked best metric and the number
// of consecutive sampled generations it has gone unimproved.
type StatisticsSnapshot struct {
	Iteration  int
	Best       FitnessVector
	Worst      FitnessVector
	Mean       FitnessVector
	BestMetric float64
	StalledFor int
}

// GenerationReport pairs the structural and the statistical view of one
// sampled generation.
type GenerationReport struct {
	Snapshot GenerationSnapshot
	Stats    StatisticsSnapshot
}
