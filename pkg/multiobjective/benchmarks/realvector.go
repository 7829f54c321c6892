package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// Bounds is the inclusive box constraint for one real-valued variable.
type Bounds struct {
	L float64
	H float64
}

// RealVector is a genome of real-valued variables with box bounds.
type RealVector struct {
	Variables []float64
	Bounds    []Bounds
}

func NewRealVector(vars []float64, b []Bounds) *RealVector {
	return &RealVector{
		Variables: vars,
		Bounds:    b,
	}
}

func (v *RealVector) Clone() framework.Individual {
	vars := make([]float64, len(v.Variables))
	copy(vars, v.Variables)
	return &RealVector{
		Variables: vars,
		Bounds:    v.Bounds,
	}
}

// sbxCrossover performs SBX (Simulated Binary Crossover) on two parents and
// returns two bounded children.
func sbxCrossover(rng *rand.Rand, a, b *RealVector) (*RealVector, *RealVector) {
	child1 := a.Clone().(*RealVector)
	child2 := b.Clone().(*RealVector)

	for i := range a.Variables {
		beta := 0.0
		if rng.Float64() <= 0.5 {
			beta = math.Pow(2*rng.Float64(), 1.0/3.0)
		} else {
			beta = math.Pow(1.0/(2*(1.0-rng.Float64())), 1.0/3.0)
		}

		child1.Variables[i] = 0.5 * ((1+beta)*a.Variables[i] + (1-beta)*b.Variables[i])
		child2.Variables[i] = 0.5 * ((1-beta)*a.Variables[i] + (1+beta)*b.Variables[i])

		// Bound checking
		child1.Variables[i] = math.Max(a.Bounds[i].L, math.Min(a.Bounds[i].H, child1.Variables[i]))
		child2.Variables[i] = math.Max(b.Bounds[i].L, math.Min(b.Bounds[i].H, child2.Variables[i]))
	}

	return child1, child2
}

// polynomialMutate performs polynomial mutation in place, one variable at a
// time under the mutation probability.
func polynomialMutate(rng *rand.Rand, v *RealVector, probability float64) {
	for i := range v.Variables {
		if rng.Float64() < probability {
			delta := 0.0
			if rng.Float64() <= 0.5 {
				delta = math.Pow(2*rng.Float64(), 1.0/3.0) - 1
			} else {
				delta = 1 - math.Pow(2*(1-rng.Float64()), 1.0/3.0)
			}

			v.Variables[i] += delta * (v.Bounds[i].H - v.Bounds[i].L)
			v.Variables[i] = math.Max(v.Bounds[i].L, math.Min(v.Bounds[i].H, v.Variables[i]))
		}
	}
}
