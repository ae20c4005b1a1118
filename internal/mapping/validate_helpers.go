package mapping

import (
	"fmt"
	"math"
	"math/bits"

	"range-remapper/internal/diagnostic"
)

// Validate checks a whole document: every stage's rules, the seeds in both
// readings, and the category chain. Seed problems that only affect the
// (start, length) reading are reported as warnings, since the document is
// still usable with single seed values.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "stage document is nil", "", "")
		return res
	}

	if len(f.Seeds) == 0 {
		res.AddError("no_seeds", "document lists no seeds", "", "seeds")
	}

	res.Merge(*checkSeedValues(f.Seeds))

	for _, d := range checkSeedRanges(f.Seeds).Errors {
		res.AddWarning(d.Code, d.Message+" (seeds unusable as ranges)", d.Stage, d.Location)
	}

	if len(f.Stages) == 0 {
		res.AddInfo("no_stages", "document has no stages; seeds map to themselves", "", "stages")
	}

	for i, s := range f.Stages {
		res.Merge(*ValidateRules(s.DisplayName(i), s.ToRules()))
	}

	validateChain(res, f.Stages)

	return res
}

// validateChain warns when a stage does not start where the previous one ended.
func validateChain(res *diagnostic.Diagnostics, stages []StageDef) {
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		if prev.To == "" || cur.From == "" || prev.To == cur.From {
			continue
		}

		res.AddWarning("broken_chain",
			fmt.Sprintf("stage starts from %q but the previous stage ends at %q", cur.From, prev.To),
			cur.DisplayName(i), "")
	}
}

// checkSeedValues rejects seeds that cannot form a single-value interval.
func checkSeedValues(seeds []Number) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for i, s := range seeds {
		if uint64(s) == math.MaxUint64 {
			res.AddError("seed_overflow", fmt.Sprintf("seed %d has no successor in uint64", s), "", seedLocation(i))
		}
	}

	return res
}

// checkSeedRanges rejects seeds that cannot be read as (start, length) pairs.
func checkSeedRanges(seeds []Number) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if len(seeds)%2 != 0 {
		res.AddError("odd_seed_count",
			fmt.Sprintf("%d seeds cannot be read as (start, length) pairs", len(seeds)), "", "seeds")
	}

	for i := 0; i+1 < len(seeds); i += 2 {
		start, length := uint64(seeds[i]), uint64(seeds[i+1])

		if length == 0 {
			res.AddError("zero_length_seed", fmt.Sprintf("seed range starting at %d has length 0", start),
				"", seedLocation(i+1))

			continue
		}

		if _, carry := bits.Add64(start, length, 0); carry != 0 {
			res.AddError("seed_overflow",
				fmt.Sprintf("seed range start %d + length %d overflows uint64", start, length), "", seedLocation(i+1))
		}
	}

	return res
}

func seedLocation(i int) string {
	return fmt.Sprintf("seeds[%d]", i)
}
