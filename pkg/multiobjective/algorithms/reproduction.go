package algorithms

import (
	"fmt"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// eliteFanOut produces the extra mutated clones of the elites: one full
// round of clones per configured elitist mutation, plus one more clone each
// of the top two elites. The asymmetry is deliberate: the two best solutions
// get extra exploration budget.
func (e *ElitistGA) eliteFanOut(iteration int, elites []*framework.IndividualStats) []framework.Individual {
	clones := make([]framework.Individual, 0, len(elites)*e.cfg.ElitistMutations+2)
	for round := 0; round < e.cfg.ElitistMutations; round++ {
		for _, s := range elites {
			clones = append(clones, s.Individual.Clone())
		}
	}
	for i := 0; i < len(elites) && i < 2; i++ {
		clones = append(clones, elites[i].Individual.Clone())
	}
	for _, c := range clones {
		e.domain.Mutate(c, e.cfg.MutationProbability, iteration)
	}
	return clones
}

// fillOffspring breeds crossover children until the quota is met. Each pass
// shuffles the parent pool and pairs index i with its mirror len-1-i; the
// domain's crossover is probability-gated and may return no children, so
// passes recycle until the quota is filled or the retry ceiling is hit.
func (e *ElitistGA) fillOffspring(iteration int, parents []*framework.IndividualStats, quota int) ([]framework.Individual, error) {
	if quota <= 0 {
		return nil, nil
	}

	pool := make([]framework.Individual, len(parents))
	for i, s := range parents {
		pool[i] = s.Individual
	}

	offspring := make([]framework.Individual, 0, quota)
	for pass := 0; pass < e.cfg.CrossoverRetryLimit; pass++ {
		e.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		for i := 0; i < len(pool) && len(offspring) < quota; i++ {
			children := e.domain.Crossover(pool[i], pool[len(pool)-1-i], e.cfg.CrossoverProbability)
			for _, child := range children {
				if len(offspring) == quota {
					break
				}
				offspring = append(offspring, child)
			}
		}
		if len(offspring) == quota {
			for _, child := range offspring {
				e.domain.Mutate(child, e.cfg.MutationProbability, iteration)
			}
			return offspring, nil
		}
	}

	return nil, &framework.ReproductionExhaustedError{
		Iteration: iteration,
		Produced:  len(offspring),
		Quota:     quota,
		Passes:    e.cfg.CrossoverRetryLimit,
	}
}

// nextGeneration assembles the next population: raw elites, the elite
// mutation fan-out, crossover offspring, and the retained parents, summing
// to exactly PopulationSize.
func (e *ElitistGA) nextGeneration(iteration int, elites, parents []*framework.IndividualStats) ([]framework.Individual, error) {
	next := make([]framework.Individual, 0, e.cfg.PopulationSize)
	for _, s := range elites {
		next = append(next, s.Individual)
	}
	next = append(next, e.eliteFanOut(iteration, elites)...)

	quota := e.cfg.PopulationSize - len(next) - len(parents)
	if quota < 0 {
		return nil, &framework.InvariantViolationError{
			Iteration: iteration,
			Check:     fmt.Sprintf("retained individuals (%d) exceed population size %d", len(next)+len(parents), e.cfg.PopulationSize),
		}
	}

	offspring, err := e.fillOffspring(iteration, parents, quota)
	if err != nil {
		return nil, err
	}
	next = append(next, offspring...)

	for _, s := range parents {
		next = append(next, s.Individual)
	}

	if len(next) != e.cfg.PopulationSize {
		return nil, &framework.InvariantViolationError{
			Iteration: iteration,
			Check:     fmt.Sprintf("next generation has %d individuals, want %d", len(next), e.cfg.PopulationSize),
		}
	}
	return next, nil
}
