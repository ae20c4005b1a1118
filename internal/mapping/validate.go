package mapping

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"

	"range-remapper/internal/diagnostic"
)

// ValidateRules checks one stage's rules. Rules are located by their 1-based
// position in the input slice.
func ValidateRules(stage string, rules []Rule) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	valid := make([]int, 0, len(rules))

	for i, r := range rules {
		loc := ruleLocation(i)

		if r.Length == 0 {
			res.AddError("zero_length_rule", fmt.Sprintf("rule %q has length 0", r.String()), stage, loc)
			continue
		}

		if _, carry := bits.Add64(r.Source, r.Length, 0); carry != 0 {
			res.AddError("rule_source_overflow",
				fmt.Sprintf("source %d + length %d overflows uint64", r.Source, r.Length), stage, loc)

			continue
		}

		if _, carry := bits.Add64(r.Destination, r.Length, 0); carry != 0 {
			res.AddError("rule_destination_overflow",
				fmt.Sprintf("destination %d + length %d overflows uint64", r.Destination, r.Length), stage, loc)

			continue
		}

		valid = append(valid, i)
	}

	validateOverlaps(res, stage, rules, valid)

	return res
}

// validateOverlaps reports every rule whose source range starts before an
// earlier one (in source order) ends.
func validateOverlaps(res *diagnostic.Diagnostics, stage string, rules []Rule, idx []int) {
	if len(idx) < 2 {
		return
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(rules[a].Source, rules[b].Source)
	})

	// reach is the rule with the furthest source end seen so far.
	reach := idx[0]

	for _, i := range idx[1:] {
		cur, prev := rules[i], rules[reach]
		if cur.Source < prev.SourceRange().End {
			res.AddError("overlapping_rules",
				fmt.Sprintf("source %s overlaps %s of %s",
					cur.SourceRange(), prev.SourceRange(), ruleLocation(reach)),
				stage, ruleLocation(i))
		}

		if cur.SourceRange().End > prev.SourceRange().End {
			reach = i
		}
	}
}

func ruleLocation(i int) string {
	return fmt.Sprintf("rule %d", i+1)
}
