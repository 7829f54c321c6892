package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// runConfig is the YAML surface of paretoctl. sigs.k8s.io/yaml round-trips
// through JSON, hence the json tags.
type runConfig struct {
	Problem              string  `json:"problem"`
	Generations          int     `json:"generations"`
	PopulationSize       int     `json:"populationSize"`
	PropagationFraction  float64 `json:"propagationFraction"`
	ElitistSize          int     `json:"elitistSize"`
	CrossoverProbability float64 `json:"crossoverProbability"`
	MutationProbability  float64 `json:"mutationProbability"`
	ElitistMutations     int     `json:"elitistMutations"`
	MaxStalledMetric     int     `json:"maxStalledMetric"`
	SnapshotInterval     int     `json:"snapshotInterval"`
	CrossoverRetryLimit  int     `json:"crossoverRetryLimit"`
	Seed                 uint64  `json:"seed"`
	PlotPath             string  `json:"plotPath"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Problem:              "zdt1",
		Generations:          250,
		PopulationSize:       100,
		PropagationFraction:  0.5,
		ElitistSize:          4,
		CrossoverProbability: 0.8,
		MutationProbability:  0.1,
		ElitistMutations:     1,
		MaxStalledMetric:     25,
		SnapshotInterval:     10,
		Seed:                 1,
	}
}

// loadRunConfig overlays the YAML file at path, when given, on the defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c runConfig) engineConfig() framework.Config {
	return framework.Config{
		Generations:          c.Generations,
		PopulationSize:       c.PopulationSize,
		PropagationFraction:  c.PropagationFraction,
		ElitistSize:          c.ElitistSize,
		CrossoverProbability: c.CrossoverProbability,
		MutationProbability:  c.MutationProbability,
		ElitistMutations:     c.ElitistMutations,
		MaxStalledMetric:     c.MaxStalledMetric,
		SnapshotInterval:     c.SnapshotInterval,
		CrossoverRetryLimit:  c.CrossoverRetryLimit,
		Seed:                 c.Seed,
	}
}
