package mapping

import (
	"fmt"
	"slices"
	"sort"
)

// OrderStages returns the stages sorted so that every stage whose From names
// another stage's To comes after it. Stages without category names keep their
// relative position among the ready ones. Ties go to the earlier input index,
// so an already chained list is returned unchanged.
func OrderStages(stages []StageDef) ([]StageDef, error) {
	order, err := topoSort(len(stages), func(i int) []int {
		var deps []int

		for j, s := range stages {
			if j != i && stages[i].From != "" && s.To == stages[i].From {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return nil, err
	}

	out := make([]StageDef, len(order))
	for i, idx := range order {
		out[i] = stages[idx]
	}

	return out, nil
}

// Ordered returns a copy of f with its stages in chain order.
func (f *File) Ordered() (*File, error) {
	stages, err := OrderStages(f.Stages)
	if err != nil {
		return nil, err
	}

	out := *f
	out.Seeds = slices.Clone(f.Seeds)
	out.Stages = stages

	return &out, nil
}

// topoSort returns indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When multiple nodes are
// available the smallest index wins. A cycle is reported as malformed input.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		var stuck []int

		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, i+1)
			}
		}

		return nil, fmt.Errorf("%w: stage categories form a cycle (stages %v)", ErrMalformedInput, stuck)
	}

	return order, nil
}
