package framework

import "fmt"

// DefaultCrossoverRetryLimit bounds the number of full passes over the
// parent pool when filling the offspring quota.
const DefaultCrossoverRetryLimit = 32

// Config holds the parameters of one optimization run.
type Config struct {
	// Generations is the hard cap on the number of generations.
	Generations int
	// PopulationSize is constant across generations.
	PopulationSize int
	// PropagationFraction of the population survives as breeding parents.
	PropagationFraction float64
	// ElitistSize individuals are carried over unchanged (as clones).
	ElitistSize int
	// CrossoverProbability gates each crossover call.
	CrossoverProbability float64
	// MutationProbability is passed through to the domain's mutation.
	MutationProbability float64
	// ElitistMutations is the number of extra mutated clones made of every
	// elite each generation.
	ElitistMutations int
	// MaxStalledMetric terminates the run once the tracked best metric has
	// gone unimproved for this many consecutive sampled generations.
	MaxStalledMetric int
	// SnapshotInterval samples one generation report every so many
	// generations ("skip"). The final generation is always sampled.
	SnapshotInterval int
	// CrossoverRetryLimit bounds the passes over the parent pool before
	// reproduction gives up. Zero selects DefaultCrossoverRetryLimit.
	CrossoverRetryLimit int
	// Seed makes shuffling and pairing reproducible.
	Seed uint64
}

// PropagationSize is the breeding-parent budget derived from the fraction.
func (c Config) PropagationSize() int {
	return int(c.PropagationFraction * float64(c.PopulationSize))
}

// WithDefaults fills the optional knobs an empty literal leaves at zero.
func (c Config) WithDefaults() Config {
	if c.SnapshotInterval == 0 {
		c.SnapshotInterval = 1
	}
	if c.CrossoverRetryLimit == 0 {
		c.CrossoverRetryLimit = DefaultCrossoverRetryLimit
	}
	return c
}

// retainedSize is the exact number of next-generation slots taken before any
// crossover offspring: raw elites, their mutation fan-out (including the
// extra top-2 clones), and the retained parents.
func (c Config) retainedSize() int {
	extra := c.ElitistSize
	if extra > 2 {
		extra = 2
	}
	return c.ElitistSize*(1+c.ElitistMutations) + extra + c.PropagationSize()
}

// Validate rejects configurations that cannot produce a well-formed run.
// Beyond per-field ranges it checks that the retained share leaves a
// non-negative offspring quota, so the population size is conserved.
func (c Config) Validate() error {
	if c.Generations <= 0 {
		return &ConfigurationError{Field: "Generations", Reason: "must be positive"}
	}
	if c.PopulationSize <= 0 {
		return &ConfigurationError{Field: "PopulationSize", Reason: "must be positive"}
	}
	if c.PropagationFraction <= 0 || c.PropagationFraction > 1 {
		return &ConfigurationError{Field: "PropagationFraction", Reason: "must be in (0, 1]"}
	}
	if c.ElitistSize < 0 || c.ElitistSize > c.PopulationSize {
		return &ConfigurationError{Field: "ElitistSize", Reason: "must be in [0, PopulationSize]"}
	}
	if c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		return &ConfigurationError{Field: "CrossoverProbability", Reason: "must be in [0, 1]"}
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return &ConfigurationError{Field: "MutationProbability", Reason: "must be in [0, 1]"}
	}
	if c.ElitistMutations < 0 {
		return &ConfigurationError{Field: "ElitistMutations", Reason: "must not be negative"}
	}
	if c.MaxStalledMetric <= 0 {
		return &ConfigurationError{Field: "MaxStalledMetric", Reason: "must be positive"}
	}
	if c.SnapshotInterval < 1 {
		return &ConfigurationError{Field: "SnapshotInterval", Reason: "must be at least 1"}
	}
	if c.CrossoverRetryLimit < 1 {
		return &ConfigurationError{Field: "CrossoverRetryLimit", Reason: "must be at least 1"}
	}
	if retained := c.retainedSize(); retained > c.PopulationSize {
		return &ConfigurationError{
			Field: "ElitistSize",
			Reason: fmt.Sprintf("elites, elite mutations and parents retain %d slots, exceeding the population size %d",
				retained, c.PopulationSize),
		}
	}
	return nil
}
