package framework

import (
	"math"
	"testing"
)

type boxGenome struct {
	values []float64
}

func (g *boxGenome) Clone() Individual {
	out := make([]float64, len(g.values))
	copy(out, g.values)
	return &boxGenome{values: out}
}

func TestIndividualStatsCloneIsDeep(t *testing.T) {
	original := NewIndividualStats(4, FitnessVector{1, 2}, &boxGenome{values: []float64{7}})
	original.DominatedByCount = 3
	original.CrowdingDistance = 0.5

	clone := original.Clone()
	clone.Fitness[0] = -1
	clone.Individual.(*boxGenome).values[0] = -1

	if original.Fitness[0] != 1 {
		t.Error("clone shares the fitness vector with the original")
	}
	if original.Individual.(*boxGenome).values[0] != 7 {
		t.Error("clone shares the genome with the original")
	}
	if clone.Index != 4 || clone.DominatedByCount != 3 || clone.CrowdingDistance != 0.5 {
		t.Error("clone dropped scalar bookkeeping")
	}
}

func TestWorstFitness(t *testing.T) {
	w := WorstFitness(3)
	if len(w) != 3 {
		t.Fatalf("arity %d, want 3", len(w))
	}
	for i, v := range w {
		if !math.IsInf(v, 1) {
			t.Errorf("component %d = %v, want +Inf", i, v)
		}
	}
}
