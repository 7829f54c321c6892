package framework

import "fmt"

// ConfigurationError reports an invalid configuration value at construction
// time. The run is never started.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// EvaluationError wraps a whole-population fitness evaluation failure. It is
// fatal: with no fitness values there is no valid ranking.
type EvaluationError struct {
	Iteration int
	Err       error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("generation %d: population evaluation failed: %v", e.Iteration, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// ReproductionExhaustedError reports that crossover could not fill the
// offspring quota within the bounded number of passes over the parent pool.
type ReproductionExhaustedError struct {
	Iteration int
	Produced  int
	Quota     int
	Passes    int
}

func (e *ReproductionExhaustedError) Error() string {
	return fmt.Sprintf("generation %d: crossover produced %d of %d offspring after %d passes over the parent pool",
		e.Iteration, e.Produced, e.Quota, e.Passes)
}

// InvariantViolationError reports a broken internal invariant, such as an
// incomplete front partition or population-size drift. It aborts the run
// with no partial generation reported.
type InvariantViolationError struct {
	Iteration int
	Check     string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("generation %d: invariant violated: %s", e.Iteration, e.Check)
}
