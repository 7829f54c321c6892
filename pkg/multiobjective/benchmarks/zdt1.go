package benchmarks

import (
	"fmt"
	"math"
	"math/rand/v2"

	"k8s.io/klog/v2"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

const (
	ZDT1Name = "ZDT1"
)

// ZDT1 is a benchmark function used to test the correctness of
// multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct {
	numVars int
	rng     *rand.Rand
}

func NewZDT1(numVars int, seed uint64) *ZDT1 {
	return &ZDT1{
		numVars: numVars,
		rng:     rand.New(rand.NewPCG(seed, seed)),
	}
}

func (p *ZDT1) Name() string {
	return ZDT1Name
}

func (p *ZDT1) bounds() []Bounds {
	b := make([]Bounds, p.numVars)
	for i := range b {
		b[i] = Bounds{L: 0.0, H: 1.0}
	}
	return b
}

// CreateInitialPopulation scatters popSize random vectors over the unit box.
func (p *ZDT1) CreateInitialPopulation(popSize int) []framework.Individual {
	population := make([]framework.Individual, popSize)
	b := p.bounds()

	for i := 0; i < popSize; i++ {
		vars := make([]float64, p.numVars)
		for j := 0; j < p.numVars; j++ {
			vars[j] = b[j].L + p.rng.Float64()*(b[j].H-b[j].L)
		}
		population[i] = NewRealVector(vars, b)
	}
	return population
}

func (p *ZDT1) CalculateFitness(iteration int, population []framework.Individual) ([]*framework.IndividualStats, error) {
	stats := make([]*framework.IndividualStats, len(population))
	for i, ind := range population {
		v, ok := ind.(*RealVector)
		if !ok {
			return nil, fmt.Errorf("individual %d: want *RealVector, got %T", i, ind)
		}
		fitness := framework.FitnessVector{p.f1(v), p.f2(v)}
		stats[i] = framework.NewIndividualStats(i, fitness, ind)
	}
	return stats, nil
}

// f1 is the first ZDT1 objective
func (p *ZDT1) f1(v *RealVector) float64 {
	return v.Variables[0]
}

// f2 is the second ZDT1 objective
func (p *ZDT1) f2(v *RealVector) float64 {
	xx := v.Variables
	g := 1.0
	for i := 1; i < len(xx); i++ {
		g += 9.0 * xx[i] / float64(len(xx)-1)
	}
	return g * (1.0 - math.Sqrt(xx[0]/g))
}

func (p *ZDT1) Crossover(a, b framework.Individual, probability float64) []framework.Individual {
	if p.rng.Float64() >= probability {
		return nil
	}
	child1, child2 := sbxCrossover(p.rng, a.(*RealVector), b.(*RealVector))
	return []framework.Individual{child1, child2}
}

func (p *ZDT1) Mutate(individual framework.Individual, probability float64, iteration int) {
	polynomialMutate(p.rng, individual.(*RealVector), probability)
}

func (p *ZDT1) Results(best framework.Individual, metrics framework.FitnessVector) {
	klog.V(2).InfoS("benchmark finished", "problem", ZDT1Name, "f1", metrics[0], "f2", metrics[1])
}

// TrueParetoFront generates numPoints points on the true Pareto front for
// ZDT1.
func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}
