package benchmarks

import (
	"math"
	"testing"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

func TestZDT1Objectives(t *testing.T) {
	p := NewZDT1(3, 1)

	// At the origin of the tail variables, g == 1 and the point lies on the
	// true front: f2 = 1 - sqrt(f1).
	v := NewRealVector([]float64{0.25, 0, 0}, p.bounds())
	stats, err := p.CalculateFitness(0, []framework.Individual{v})
	if err != nil {
		t.Fatalf("CalculateFitness: %v", err)
	}
	f := stats[0].Fitness
	if f[0] != 0.25 {
		t.Errorf("f1 = %v, want 0.25", f[0])
	}
	if want := 1 - math.Sqrt(0.25); math.Abs(f[1]-want) > 1e-12 {
		t.Errorf("f2 = %v, want %v", f[1], want)
	}
}

func TestZDT1InitialPopulationInBounds(t *testing.T) {
	p := NewZDT1(5, 2)
	population := p.CreateInitialPopulation(30)
	if len(population) != 30 {
		t.Fatalf("got %d individuals, want 30", len(population))
	}
	for i, ind := range population {
		v := ind.(*RealVector)
		for j, x := range v.Variables {
			if x < 0 || x > 1 {
				t.Errorf("individual %d variable %d = %v, out of [0,1]", i, j, x)
			}
		}
	}
}

func TestZDT1VariationStaysBounded(t *testing.T) {
	p := NewZDT1(4, 3)
	population := p.CreateInitialPopulation(2)

	children := p.Crossover(population[0], population[1], 1.0)
	if len(children) != 2 {
		t.Fatalf("got %d children with probability 1, want 2", len(children))
	}
	for _, c := range children {
		p.Mutate(c, 1.0, 0)
		for j, x := range c.(*RealVector).Variables {
			if x < 0 || x > 1 {
				t.Errorf("child variable %d = %v, out of [0,1]", j, x)
			}
		}
	}

	if got := p.Crossover(population[0], population[1], 0.0); got != nil {
		t.Errorf("crossover with probability 0 produced %d children", len(got))
	}
}

func TestZDT1TrueParetoFront(t *testing.T) {
	points := NewZDT1(3, 4).TrueParetoFront(11)
	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first[0] != 0 || first[1] != 1 {
		t.Errorf("front start %v, want (0,1)", first)
	}
	if last[0] != 1 || last[1] != 0 {
		t.Errorf("front end %v, want (1,0)", last)
	}
}

func TestRealVectorCloneIsDeep(t *testing.T) {
	v := NewRealVector([]float64{0.5, 0.5}, []Bounds{{0, 1}, {0, 1}})
	c := v.Clone().(*RealVector)
	c.Variables[0] = 0.9
	if v.Variables[0] != 0.5 {
		t.Error("clone shares variables with the original")
	}
}
