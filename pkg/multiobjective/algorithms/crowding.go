package algorithms

import (
	"math"
	"sort"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// crowdingEpsilon keeps the per-dimension denominator non-zero when a front
// is constant in that objective.
const crowdingEpsilon = 1e-12

// CrowdSort computes crowding distances for a front and orders it descending
// by total distance, most isolated first. Fronts of size <= 2 get +Inf for
// all members and are always preserved whole. Otherwise, per objective
// dimension, the two boundary members accumulate +Inf and interior members
// accumulate the normalized gap between their neighbors; distances sum
// across dimensions.
func CrowdSort(front framework.Front) {
	for _, s := range front {
		s.CrowdingDistance = 0
	}

	if len(front) <= 2 {
		for _, s := range front {
			s.CrowdingDistance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Fitness)
	for m := 0; m < numObjectives; m++ {
		m := m
		sort.SliceStable(front, func(i, j int) bool {
			return front[i].Fitness[m] < front[j].Fitness[m]
		})

		front[0].CrowdingDistance = math.Inf(1)
		front[len(front)-1].CrowdingDistance = math.Inf(1)

		objectiveRange := front[len(front)-1].Fitness[m] - front[0].Fitness[m]
		for i := 1; i < len(front)-1; i++ {
			gap := (front[i+1].Fitness[m] - front[i-1].Fitness[m]) / (objectiveRange + crowdingEpsilon)
			// Sentinel-masked members carry +Inf fitness, which makes the
			// gap arithmetic indeterminate; their contribution is zero.
			if !math.IsNaN(gap) {
				front[i].CrowdingDistance += gap
			}
		}
	}

	sort.SliceStable(front, func(i, j int) bool {
		return front[i].CrowdingDistance > front[j].CrowdingDistance
	})
}
