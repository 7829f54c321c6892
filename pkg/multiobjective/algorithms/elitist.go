package algorithms

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"k8s.io/klog/v2"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

const (
	Name = "Elitist-NSGA"
)

// ElitistGA drives the evaluate, rank, select, reproduce generation loop
// over an opaque problem domain. Runs are strictly generation-sequential;
// the only internal state that survives a generation is the population
// itself and the stall bookkeeping.
type ElitistGA struct {
	cfg    framework.Config
	domain framework.ProblemDomain
	rng    *rand.Rand
	order  frontOrder
	stats  *Statistics
}

// NewElitistGA validates the configuration and binds the engine to a problem
// domain. A domain implementing framework.FrontSorter overrides the default
// ideal-point within-front order.
func NewElitistGA(cfg framework.Config, domain framework.ProblemDomain) (*ElitistGA, error) {
	if domain == nil {
		return nil, &framework.ConfigurationError{Field: "domain", Reason: "problem domain is required"}
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &ElitistGA{
		cfg:    cfg,
		domain: domain,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		stats:  NewStatistics(),
	}
	if sorter, ok := domain.(framework.FrontSorter); ok {
		e.order = sorter.SortFront
	} else {
		e.order = SortByIdealPoint
	}
	return e, nil
}

func (e *ElitistGA) Name() string { return Name }

// Config returns the effective configuration, defaults applied.
func (e *ElitistGA) Config() framework.Config { return e.cfg }

// Reports starts a run and returns its lazy report sequence. The sequence is
// finite and non-restartable: at most ceil(Generations/SnapshotInterval)
// reports, the final generation always included. Cancellation of ctx is
// honored at generation boundaries only; a generation is atomic.
func (e *ElitistGA) Reports(ctx context.Context) *RunSequence {
	return &RunSequence{
		engine:     e,
		ctx:        ctx,
		population: e.domain.CreateInitialPopulation(e.cfg.PopulationSize),
	}
}

// Run drains the report sequence and returns the best individual's final
// record.
func (e *ElitistGA) Run(ctx context.Context) (*framework.IndividualStats, error) {
	seq := e.Reports(ctx)
	for seq.Next() {
	}
	if err := seq.Err(); err != nil {
		return nil, err
	}
	return seq.Best(), nil
}

// RunSequence is the engine's reporting surface: a lazy, finite,
// non-restartable sequence of sampled generation reports, consumed in the
// manner of bufio.Scanner.
type RunSequence struct {
	engine     *ElitistGA
	ctx        context.Context
	population []framework.Individual
	iteration  int
	arity      int
	best       *framework.IndividualStats
	report     framework.GenerationReport
	err        error
	done       bool
}

// Next advances the run to the next sampled generation. It returns false
// when the run has terminated, failed, or been canceled; Err distinguishes
// the cases.
func (s *RunSequence) Next() bool {
	if s.done {
		return false
	}
	e := s.engine
	logger := klog.FromContext(s.ctx)

	for {
		if err := s.ctx.Err(); err != nil {
			s.fail(err)
			return false
		}

		g := s.iteration
		started := time.Now()

		stats, err := e.domain.CalculateFitness(g, s.population)
		if err != nil {
			s.fail(&framework.EvaluationError{Iteration: g, Err: err})
			return false
		}
		if err := s.validateEvaluation(g, stats); err != nil {
			s.fail(err)
			return false
		}

		CollectDominationStats(stats)
		fronts := CollectFronts(stats)
		if err := validatePartition(g, fronts, len(stats)); err != nil {
			s.fail(err)
			return false
		}

		snap := e.stats.Record(g, stats)
		s.best = bestOf(fronts[0], e.order)

		lastGeneration := g == e.cfg.Generations-1
		sampled := lastGeneration || (g+1)%e.cfg.SnapshotInterval == 0
		terminal := lastGeneration
		if sampled {
			snap.StalledFor = e.stats.ObserveSample(snap.BestMetric)
			if snap.StalledFor >= e.cfg.MaxStalledMetric {
				logger.V(2).Info("terminating on stalled best metric",
					"algorithm", Name, "generation", g, "bestMetric", snap.BestMetric, "stalledFor", snap.StalledFor)
				terminal = true
			}
		}

		if !terminal {
			elites := SelectElites(fronts, e.cfg.ElitistSize, e.order)
			parents := SelectParents(fronts, e.cfg.PropagationSize())
			next, err := e.nextGeneration(g, elites, parents)
			if err != nil {
				s.fail(err)
				return false
			}
			s.population = next
		}

		if cleaner, ok := e.domain.(framework.IterationCleaner); ok {
			cleaner.PostIterationCleanup(g)
		}

		s.iteration++
		if terminal {
			s.done = true
			e.domain.Results(s.best.Individual.Clone(), s.best.Fitness.Clone())
		}
		if sampled {
			s.report = framework.GenerationReport{
				Snapshot: framework.GenerationSnapshot{
					Iteration: g,
					Fronts:    fronts,
					Elapsed:   time.Since(started),
				},
				Stats: snap,
			}
			logger.V(4).Info("sampled generation",
				"algorithm", Name, "generation", g, "fronts", len(fronts),
				"bestMetric", snap.BestMetric, "stalledFor", snap.StalledFor)
			return true
		}
	}
}

// Report returns the report produced by the last successful Next call.
func (s *RunSequence) Report() framework.GenerationReport { return s.report }

// Best returns the record of the best individual seen so far: the
// ideal-point leader of the Pareto-optimal front, cloned.
func (s *RunSequence) Best() *framework.IndividualStats { return s.best }

// Err returns the terminal error of the run, nil after a clean termination.
func (s *RunSequence) Err() error { return s.err }

func (s *RunSequence) fail(err error) {
	s.done = true
	s.err = err
}

// validateEvaluation enforces the evaluation contract: one record per
// population member, in order, with a consistent fitness arity across the
// whole run.
func (s *RunSequence) validateEvaluation(iteration int, stats []*framework.IndividualStats) error {
	if len(stats) != len(s.population) {
		return &framework.InvariantViolationError{
			Iteration: iteration,
			Check:     fmt.Sprintf("evaluation returned %d records for %d individuals", len(stats), len(s.population)),
		}
	}
	for i, st := range stats {
		if st == nil || st.Individual == nil {
			return &framework.InvariantViolationError{
				Iteration: iteration,
				Check:     fmt.Sprintf("evaluation record %d is incomplete", i),
			}
		}
		if len(st.Fitness) == 0 {
			return &framework.InvariantViolationError{
				Iteration: iteration,
				Check:     fmt.Sprintf("evaluation record %d has an empty fitness vector", i),
			}
		}
		if s.arity == 0 {
			s.arity = len(st.Fitness)
		}
		if len(st.Fitness) != s.arity {
			return &framework.InvariantViolationError{
				Iteration: iteration,
				Check:     fmt.Sprintf("evaluation record %d has fitness arity %d, want %d", i, len(st.Fitness), s.arity),
			}
		}
	}
	return nil
}

func validatePartition(iteration int, fronts []framework.Front, population int) error {
	total := 0
	for _, front := range fronts {
		total += len(front)
	}
	if len(fronts) == 0 || total != population {
		return &framework.InvariantViolationError{
			Iteration: iteration,
			Check:     fmt.Sprintf("front partition covers %d of %d individuals", total, population),
		}
	}
	return nil
}

// bestOf clones the leading record of the Pareto-optimal front under the
// within-front order.
func bestOf(front framework.Front, order frontOrder) *framework.IndividualStats {
	ordered := append(framework.Front(nil), front...)
	order(ordered)
	return ordered[0].Clone()
}
