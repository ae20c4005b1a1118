package mapping

import (
	"fmt"

	"range-remapper/internal/interval"
)

// Tables builds one validated Table per stage, in document order.
func (f *File) Tables() ([]*Table, error) {
	tables := make([]*Table, 0, len(f.Stages))

	for i, s := range f.Stages {
		t, err := NewTable(s.DisplayName(i), s.ToRules())
		if err != nil {
			return nil, err
		}

		t.From, t.To = s.From, s.To
		tables = append(tables, t)
	}

	return tables, nil
}

// SeedValues returns every seed as a single-value interval.
func (f *File) SeedValues() (interval.Set, error) {
	diags := checkSeedValues(f.Seeds)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, diags.Error())
	}

	out := make(interval.Set, len(f.Seeds))
	for i, s := range f.Seeds {
		out[i] = interval.Interval{Start: uint64(s), End: uint64(s) + 1}
	}

	return out, nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (f *File) SeedRanges() (interval.Set, error) {
	diags := checkSeedRanges(f.Seeds)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, diags.Error())
	}

	out := make(interval.Set, 0, len(f.Seeds)/2)

	for i := 0; i+1 < len(f.Seeds); i += 2 {
		iv, err := interval.FromLength(uint64(f.Seeds[i]), uint64(f.Seeds[i+1]))
		if err != nil {
			// checkSeedRanges rejects everything FromLength does.
			return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}

		out = append(out, iv)
	}

	return out, nil
}
