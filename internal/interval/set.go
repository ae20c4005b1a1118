package interval

import (
	"cmp"
	"slices"
)

// Set is a multiset of intervals. Order carries no meaning.
type Set []Interval

// Min returns the smallest start across the set. ok is false for an empty set.
func (s Set) Min() (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}

	lowest := s[0].Start
	for _, iv := range s[1:] {
		lowest = min(lowest, iv.Start)
	}

	return lowest, true
}

// Total returns the number of values covered, counting overlaps once per
// interval. It saturates at the maximum uint64.
func (s Set) Total() uint64 {
	var total uint64

	for _, iv := range s {
		n := iv.Len()
		if total > ^uint64(0)-n {
			return ^uint64(0)
		}

		total += n
	}

	return total
}

// Sorted returns a copy ordered by start, then end.
func (s Set) Sorted() Set {
	out := slices.Clone(s)
	slices.SortFunc(out, compare)

	return out
}

// Normalize returns the canonical form of the set: sorted, with overlapping
// and adjacent intervals merged and empty intervals dropped. Two sets that
// cover the same values normalize to equal slices.
func (s Set) Normalize() Set {
	sorted := s.Sorted()
	out := make(Set, 0, len(sorted))

	for _, iv := range sorted {
		if iv.IsEmpty() {
			continue
		}

		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}

		out = append(out, iv)
	}

	return out
}

func compare(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}

	return cmp.Compare(a.End, b.End)
}
