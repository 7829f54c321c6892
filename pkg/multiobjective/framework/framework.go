package framework

// ProblemDomain describes the contract a specific optimization problem needs
// to implement. The engine is generic over it: individuals stay opaque, and
// everything genome-specific (construction, evaluation, variation) happens
// behind this interface.
type ProblemDomain interface {
	Name() string

	// CreateInitialPopulation builds exactly size individuals.
	CreateInitialPopulation(size int) []Individual

	// CalculateFitness evaluates the whole population for one generation and
	// returns one record per individual, in the same order, with a fixed
	// fitness arity. A returned error means no valid ranking is possible and
	// aborts the run. A failure confined to a single individual must instead
	// be masked by the domain with WorstFitness so the generation can
	// proceed.
	CalculateFitness(iteration int, population []Individual) ([]*IndividualStats, error)

	// Crossover breeds the two parents, gated by the crossover probability.
	// It may return zero children.
	Crossover(a, b Individual, probability float64) []Individual

	// Mutate modifies the individual in place. The iteration index supports
	// mutation-strength annealing.
	Mutate(individual Individual, probability float64, iteration int)

	// Results receives the best individual and its fitness once the run
	// terminates.
	Results(best Individual, metrics FitnessVector)
}

// FrontSorter is an optional ProblemDomain capability that overrides the
// default ideal-point ordering used within a front. The order must be
// deterministic.
type FrontSorter interface {
	SortFront(front Front)
}

// IterationCleaner is an optional ProblemDomain capability invoked once per
// generation for housekeeping.
type IterationCleaner interface {
	PostIterationCleanup(iteration int)
}

// ParetoReference is an optional ProblemDomain capability for problems whose
// true Pareto front is known analytically. When there isn't a way to find
// the true front, simply don't implement it.
type ParetoReference interface {
	TrueParetoFront(numPoints int) []ObjectiveSpacePoint
}
