package algorithms

import (
	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// Dominates checks if fitness vector a Pareto-dominates b: no worse in every
// objective and strictly better in at least one (minimization). Equal
// vectors never dominate each other.
func Dominates(a, b framework.FitnessVector) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// CollectDominationStats recomputes DominatedByCount for every record: the
// number of same-generation members that dominate it. Crowding distances are
// reset at the same time, since both are generation-local. Cost is
// O(n²·m) over the population.
func CollectDominationStats(stats []*framework.IndividualStats) {
	for _, s := range stats {
		s.DominatedByCount = 0
		s.CrowdingDistance = 0
	}
	for i := 0; i < len(stats); i++ {
		for j := 0; j < len(stats); j++ {
			if i == j {
				continue
			}
			if Dominates(stats[i].Fitness, stats[j].Fitness) {
				stats[j].DominatedByCount++
			}
		}
	}
}
