package benchmarks

import (
	"math"
	"testing"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

func TestStrategySearchEvaluation(t *testing.T) {
	p := NewStrategySearch(500, 9)
	population := p.CreateInitialPopulation(20)
	stats, err := p.CalculateFitness(0, population)
	if err != nil {
		t.Fatalf("CalculateFitness: %v", err)
	}
	if len(stats) != 20 {
		t.Fatalf("got %d records, want 20", len(stats))
	}
	for i, s := range stats {
		if s.Index != i {
			t.Errorf("record %d carries index %d", i, s.Index)
		}
		if len(s.Fitness) != 2 {
			t.Errorf("record %d has arity %d, want 2", i, len(s.Fitness))
		}
		if s.Fitness[1] < 0 {
			t.Errorf("record %d has negative drawdown %v", i, s.Fitness[1])
		}
	}
	if p.MaskedEvaluations() != 0 {
		t.Errorf("valid population masked %d times", p.MaskedEvaluations())
	}
}

// A parameter set the backtest cannot price is masked with the sentinel
// worst fitness instead of failing the generation, and the substitution is
// counted.
func TestStrategySearchMasksInvalidIndividuals(t *testing.T) {
	p := NewStrategySearch(200, 9)
	broken := &StrategyParams{FastPeriod: 30, SlowPeriod: 10, StopLoss: 0.05, TakeProfit: 0.1}
	healthy := &StrategyParams{FastPeriod: 5, SlowPeriod: 20, StopLoss: 0.05, TakeProfit: 0.1}

	stats, err := p.CalculateFitness(0, []framework.Individual{broken, healthy})
	if err != nil {
		t.Fatalf("per-individual failure must not fail the call: %v", err)
	}
	for d, v := range stats[0].Fitness {
		if !math.IsInf(v, 1) {
			t.Errorf("masked component %d = %v, want +Inf", d, v)
		}
	}
	for d, v := range stats[1].Fitness {
		if math.IsInf(v, 1) {
			t.Errorf("healthy component %d masked", d)
		}
	}
	if p.MaskedEvaluations() != 1 {
		t.Errorf("MaskedEvaluations = %d, want 1", p.MaskedEvaluations())
	}
}

func TestStrategySearchDeterministicBacktest(t *testing.T) {
	a := NewStrategySearch(400, 21)
	b := NewStrategySearch(400, 21)
	params := &StrategyParams{FastPeriod: 8, SlowPeriod: 30, StopLoss: 0.04, TakeProfit: 0.12}

	ra, da := a.backtest(params)
	rb, db := b.backtest(params)
	if ra != rb || da != db {
		t.Errorf("same seed, different backtests: (%v,%v) vs (%v,%v)", ra, da, rb, db)
	}
	if da < 0 || da > 1 {
		t.Errorf("drawdown %v outside [0,1]", da)
	}
}

func TestStrategySearchMutateKeepsParamsValid(t *testing.T) {
	p := NewStrategySearch(100, 5)
	params := &StrategyParams{FastPeriod: 10, SlowPeriod: 40, StopLoss: 0.05, TakeProfit: 0.1}
	for iteration := 0; iteration < 200; iteration++ {
		p.Mutate(params, 1.0, iteration)
		if !params.valid() {
			t.Fatalf("iteration %d produced invalid params %+v", iteration, params)
		}
	}
}

func TestStrategySearchCrossover(t *testing.T) {
	p := NewStrategySearch(100, 6)
	a := &StrategyParams{FastPeriod: 5, SlowPeriod: 30, StopLoss: 0.02, TakeProfit: 0.08}
	b := &StrategyParams{FastPeriod: 12, SlowPeriod: 60, StopLoss: 0.06, TakeProfit: 0.2}

	children := p.Crossover(a, b, 1.0)
	if len(children) != 2 {
		t.Fatalf("got %d children with probability 1, want 2", len(children))
	}
	// Children are fresh individuals, never the parents themselves.
	for _, c := range children {
		if c == framework.Individual(a) || c == framework.Individual(b) {
			t.Error("crossover returned a parent reference")
		}
	}
	if got := p.Crossover(a, b, 0.0); got != nil {
		t.Errorf("crossover with probability 0 produced %d children", len(got))
	}
}
