package algorithms

import (
	"github.com/yersiniasGhost/berlin-sub001/pkg/multiobjective/framework"
)

// frontOrder is the deterministic within-front order used by elite
// selection. The default is SortByIdealPoint; a problem domain implementing
// framework.FrontSorter overrides it.
type frontOrder func(framework.Front)

// SelectElites walks fronts in rank order and, within each front in the
// given order, takes up to n individuals. Every selected record is
// deep-cloned, so later mutation of an elite clone cannot corrupt any
// reference still held elsewhere. The input fronts are left untouched.
func SelectElites(fronts []framework.Front, n int, order frontOrder) []*framework.IndividualStats {
	elites := make([]*framework.IndividualStats, 0, n)
	for _, front := range fronts {
		if len(elites) == n {
			break
		}
		ordered := append(framework.Front(nil), front...)
		order(ordered)
		for _, s := range ordered {
			if len(elites) == n {
				break
			}
			elites = append(elites, s.Clone())
		}
	}
	return elites
}

// SelectParents walks fronts in rank order, taking each front whole while it
// still fits under the budget. The front that would overflow is crowd-sorted
// and only its most diverse members are taken, hitting the budget exactly.
// Parents are references; they are cloned later on demand. The input fronts
// are left untouched.
func SelectParents(fronts []framework.Front, budget int) []*framework.IndividualStats {
	parents := make([]*framework.IndividualStats, 0, budget)
	for _, front := range fronts {
		remaining := budget - len(parents)
		if remaining == 0 {
			break
		}
		if len(front) <= remaining {
			parents = append(parents, front...)
			continue
		}
		trimmed := append(framework.Front(nil), front...)
		CrowdSort(trimmed)
		parents = append(parents, trimmed[:remaining]...)
		break
	}
	return parents
}
