package benchmarks

import (
	"math"
	"math/rand/v2"

	"k8s.io/klog/v2"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

const (
	StrategySearchName = "StrategySearch"

	minPeriod = 2
	maxFast   = 60
	maxSlow   = 240
)

// StrategyParams is a genome of moving-average crossover strategy
// parameters: enter long when the fast SMA closes above the slow SMA, exit
// on the opposite cross or when the stop-loss / take-profit band is hit.
type StrategyParams struct {
	FastPeriod int
	SlowPeriod int
	StopLoss   float64 // fraction of entry price, e.g. 0.05
	TakeProfit float64 // fraction of entry price
}

func (s *StrategyParams) Clone() framework.Individual {
	out := *s
	return &out
}

// valid rejects parameter sets the backtest cannot price.
func (s *StrategyParams) valid() bool {
	return s.FastPeriod >= minPeriod && s.SlowPeriod > s.FastPeriod &&
		s.StopLoss > 0 && s.TakeProfit > 0
}

// StrategySearch evaluates crossover-strategy parameter sets against a
// synthetic close-price series. Objectives, both minimized: negated total
// return, and maximum drawdown. Parameter sets the backtest cannot price are
// masked with the sentinel worst fitness so the generation proceeds; the
// substitutions are counted and observable via MaskedEvaluations.
type StrategySearch struct {
	closes []float64
	rng    *rand.Rand
	masked int
}

// NewStrategySearch builds the domain over a geometric random walk of
// numCandles closes, deterministic for a given seed.
func NewStrategySearch(numCandles int, seed uint64) *StrategySearch {
	rng := rand.New(rand.NewPCG(seed, seed))
	closes := make([]float64, numCandles)
	price := 100.0
	for i := range closes {
		drift := 0.0002
		shock := rng.NormFloat64() * 0.01
		price *= 1 + drift + shock
		closes[i] = price
	}
	return &StrategySearch{
		closes: closes,
		rng:    rng,
	}
}

func (p *StrategySearch) Name() string {
	return StrategySearchName
}

// MaskedEvaluations reports how many individual evaluations were substituted
// with the sentinel worst fitness since construction.
func (p *StrategySearch) MaskedEvaluations() int {
	return p.masked
}

func (p *StrategySearch) CreateInitialPopulation(popSize int) []framework.Individual {
	population := make([]framework.Individual, popSize)
	for i := range population {
		fast := minPeriod + p.rng.IntN(maxFast-minPeriod)
		population[i] = &StrategyParams{
			FastPeriod: fast,
			SlowPeriod: fast + 1 + p.rng.IntN(maxSlow-fast),
			StopLoss:   0.01 + p.rng.Float64()*0.09,
			TakeProfit: 0.01 + p.rng.Float64()*0.19,
		}
	}
	return population
}

func (p *StrategySearch) CalculateFitness(iteration int, population []framework.Individual) ([]*framework.IndividualStats, error) {
	stats := make([]*framework.IndividualStats, len(population))
	for i, ind := range population {
		params, ok := ind.(*StrategyParams)
		if !ok || !params.valid() {
			p.masked++
			stats[i] = framework.NewIndividualStats(i, framework.WorstFitness(2), ind)
			continue
		}
		totalReturn, maxDrawdown := p.backtest(params)
		stats[i] = framework.NewIndividualStats(i, framework.FitnessVector{-totalReturn, maxDrawdown}, ind)
	}
	return stats, nil
}

// backtest runs the crossover strategy over the close series and returns the
// total return and the maximum equity drawdown, both as fractions.
func (p *StrategySearch) backtest(params *StrategyParams) (totalReturn, maxDrawdown float64) {
	equity := 1.0
	peak := 1.0
	entry := 0.0
	long := false

	fast := newSMA(params.FastPeriod)
	slow := newSMA(params.SlowPeriod)

	for _, c := range p.closes {
		fastVal, fastReady := fast.update(c)
		slowVal, slowReady := slow.update(c)
		if !fastReady || !slowReady {
			continue
		}

		if long {
			change := c/entry - 1
			exit := fastVal < slowVal || change <= -params.StopLoss || change >= params.TakeProfit
			if exit {
				equity *= 1 + change
				long = false
				if equity > peak {
					peak = equity
				}
				if dd := 1 - equity/peak; dd > maxDrawdown {
					maxDrawdown = dd
				}
			}
			continue
		}

		if fastVal > slowVal {
			entry = c
			long = true
		}
	}

	if long {
		equity *= p.closes[len(p.closes)-1] / entry
		if dd := 1 - equity/peak; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}
	return equity - 1, maxDrawdown
}

// Crossover mixes two parameter sets gene-wise, gated by the crossover
// probability. It produces two children or none.
func (p *StrategySearch) Crossover(a, b framework.Individual, probability float64) []framework.Individual {
	if p.rng.Float64() >= probability {
		return nil
	}
	pa := a.(*StrategyParams)
	pb := b.(*StrategyParams)
	child1 := pa.Clone().(*StrategyParams)
	child2 := pb.Clone().(*StrategyParams)

	if p.rng.Float64() < 0.5 {
		child1.FastPeriod, child2.FastPeriod = pb.FastPeriod, pa.FastPeriod
	}
	if p.rng.Float64() < 0.5 {
		child1.SlowPeriod, child2.SlowPeriod = pb.SlowPeriod, pa.SlowPeriod
	}
	if p.rng.Float64() < 0.5 {
		child1.StopLoss, child2.StopLoss = pb.StopLoss, pa.StopLoss
	}
	if p.rng.Float64() < 0.5 {
		child1.TakeProfit, child2.TakeProfit = pb.TakeProfit, pa.TakeProfit
	}
	return []framework.Individual{child1, child2}
}

// Mutate jitters parameters in place. The jitter amplitude anneals with the
// iteration index so late generations fine-tune instead of jumping.
func (p *StrategySearch) Mutate(individual framework.Individual, probability float64, iteration int) {
	params := individual.(*StrategyParams)
	scale := 1.0 / (1.0 + float64(iteration)/50.0)

	if p.rng.Float64() < probability {
		params.FastPeriod = clampInt(params.FastPeriod+jitterInt(p.rng, 10, scale), minPeriod, maxFast)
	}
	if p.rng.Float64() < probability {
		params.SlowPeriod = clampInt(params.SlowPeriod+jitterInt(p.rng, 40, scale), params.FastPeriod+1, maxSlow)
	}
	if p.rng.Float64() < probability {
		params.StopLoss = clampFloat(params.StopLoss*(1+p.rng.NormFloat64()*0.2*scale), 0.005, 0.2)
	}
	if p.rng.Float64() < probability {
		params.TakeProfit = clampFloat(params.TakeProfit*(1+p.rng.NormFloat64()*0.2*scale), 0.005, 0.5)
	}
}

func (p *StrategySearch) Results(best framework.Individual, metrics framework.FitnessVector) {
	params := best.(*StrategyParams)
	klog.V(2).InfoS("strategy search finished",
		"problem", StrategySearchName,
		"fastPeriod", params.FastPeriod, "slowPeriod", params.SlowPeriod,
		"stopLoss", params.StopLoss, "takeProfit", params.TakeProfit,
		"totalReturn", -metrics[0], "maxDrawdown", metrics[1])
}

func jitterInt(rng *rand.Rand, span int, scale float64) int {
	width := int(math.Round(float64(span) * scale))
	if width < 1 {
		width = 1
	}
	return rng.IntN(2*width+1) - width
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// sma is an incremental simple moving average over a fixed window.
type sma struct {
	window []float64
	next   int
	filled int
	sum    float64
}

func newSMA(period int) *sma {
	return &sma{window: make([]float64, period)}
}

func (s *sma) update(v float64) (float64, bool) {
	s.sum += v - s.window[s.next]
	s.window[s.next] = v
	s.next = (s.next + 1) % len(s.window)
	if s.filled < len(s.window) {
		s.filled++
	}
	if s.filled < len(s.window) {
		return 0, false
	}
	return s.sum / float64(len(s.window)), true
}
