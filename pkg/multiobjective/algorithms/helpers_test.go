package algorithms

import (
	"errors"
	"fmt"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// testGenome is a minimal opaque individual whose fitness is carried along
// with it, so stub domains can evaluate without any real problem behind
// them.
type testGenome struct {
	fitness framework.FitnessVector
	marker  float64
}

func (g *testGenome) Clone() framework.Individual {
	c := &testGenome{fitness: g.fitness.Clone(), marker: g.marker}
	return c
}

func statsFromVectors(vectors ...framework.FitnessVector) []*framework.IndividualStats {
	stats := make([]*framework.IndividualStats, len(vectors))
	for i, v := range vectors {
		stats[i] = framework.NewIndividualStats(i, v.Clone(), &testGenome{fitness: v.Clone()})
	}
	return stats
}

// stubDomain implements framework.ProblemDomain over testGenome.
type stubDomain struct {
	initial       []framework.Individual
	evalErr       error
	sterile       bool // crossover never produces children
	mutations     int
	resultsCalled int
	lastBest      framework.FitnessVector
}

func (d *stubDomain) Name() string { return "stub" }

func (d *stubDomain) CreateInitialPopulation(size int) []framework.Individual {
	if d.initial != nil {
		return d.initial
	}
	population := make([]framework.Individual, size)
	for i := range population {
		population[i] = &testGenome{fitness: framework.FitnessVector{float64(i), float64(size - i)}}
	}
	return population
}

func (d *stubDomain) CalculateFitness(iteration int, population []framework.Individual) ([]*framework.IndividualStats, error) {
	if d.evalErr != nil {
		return nil, d.evalErr
	}
	stats := make([]*framework.IndividualStats, len(population))
	for i, ind := range population {
		g, ok := ind.(*testGenome)
		if !ok {
			return nil, fmt.Errorf("individual %d: want *testGenome, got %T", i, ind)
		}
		stats[i] = framework.NewIndividualStats(i, g.fitness.Clone(), ind)
	}
	return stats, nil
}

func (d *stubDomain) Crossover(a, b framework.Individual, probability float64) []framework.Individual {
	if d.sterile {
		return nil
	}
	return []framework.Individual{a.Clone(), b.Clone()}
}

func (d *stubDomain) Mutate(individual framework.Individual, probability float64, iteration int) {
	d.mutations++
	individual.(*testGenome).marker++
}

func (d *stubDomain) Results(best framework.Individual, metrics framework.FitnessVector) {
	d.resultsCalled++
	d.lastBest = metrics
}

var errEvalDown = errors.New("backtest cluster unavailable")
