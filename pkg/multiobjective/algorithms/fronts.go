package algorithms

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// CollectFronts partitions the population into non-dominated fronts by
// grouping on DominatedByCount. Raw counts may have gaps (no individual at a
// given count), so the builder probes count levels upward from the lowest
// present one; each non-empty level becomes the next rank. Output ranks are
// contiguous from 0 regardless of gaps, and every individual lands in
// exactly one front.
func CollectFronts(stats []*framework.IndividualStats) []framework.Front {
	byCount := make(map[int]framework.Front)
	for _, s := range stats {
		byCount[s.DominatedByCount] = append(byCount[s.DominatedByCount], s)
	}

	levels := make([]int, 0, len(byCount))
	for level := range byCount {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	fronts := make([]framework.Front, 0, len(levels))
	for _, level := range levels {
		fronts = append(fronts, byCount[level])
	}
	return fronts
}

// IdealPoint is the component-wise minimum fitness vector of a front.
func IdealPoint(front framework.Front) framework.FitnessVector {
	if len(front) == 0 {
		return nil
	}
	ideal := front[0].Fitness.Clone()
	for _, s := range front[1:] {
		for d, v := range s.Fitness {
			if v < ideal[d] {
				ideal[d] = v
			}
		}
	}
	return ideal
}

// SortByIdealPoint orders a front by Euclidean distance to its ideal point,
// closest first. This convergence-oriented order is distinct from crowding
// order and is what elite selection walks.
func SortByIdealPoint(front framework.Front) {
	ideal := IdealPoint(front)
	dist := make(map[*framework.IndividualStats]float64, len(front))
	for _, s := range front {
		dist[s] = floats.Distance(s.Fitness, ideal, 2)
	}
	sort.SliceStable(front, func(i, j int) bool {
		return dist[front[i]] < dist[front[j]]
	})
}
