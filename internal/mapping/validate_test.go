package mapping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name     string
		rules    []Rule
		wantCode []string
		wantLoc  []string
	}{
		{
			name:  "valid",
			rules: []Rule{{Destination: 50, Source: 98, Length: 2}, {Destination: 52, Source: 50, Length: 48}},
		},
		{
			name:  "touching sources are fine",
			rules: []Rule{{Destination: 0, Source: 10, Length: 5}, {Destination: 0, Source: 15, Length: 5}},
		},
		{
			name:     "zero length",
			rules:    []Rule{{Destination: 1, Source: 2, Length: 0}},
			wantCode: []string{"zero_length_rule"},
			wantLoc:  []string{"rule 1"},
		},
		{
			name:     "source overflow",
			rules:    []Rule{{Destination: 0, Source: math.MaxUint64, Length: 1}},
			wantCode: []string{"rule_source_overflow"},
			wantLoc:  []string{"rule 1"},
		},
		{
			name:     "destination overflow",
			rules:    []Rule{{Destination: math.MaxUint64 - 1, Source: 0, Length: 2}},
			wantCode: []string{"rule_destination_overflow"},
			wantLoc:  []string{"rule 1"},
		},
		{
			name: "overlap reported on later rule",
			rules: []Rule{
				{Destination: 0, Source: 30, Length: 10},
				{Destination: 0, Source: 10, Length: 25},
			},
			wantCode: []string{"overlapping_rules"},
			wantLoc:  []string{"rule 1"},
		},
		{
			name: "overlap with a wide earlier rule",
			rules: []Rule{
				{Destination: 0, Source: 0, Length: 100},
				{Destination: 0, Source: 10, Length: 5},
				{Destination: 0, Source: 50, Length: 5},
			},
			wantCode: []string{"overlapping_rules", "overlapping_rules"},
			wantLoc:  []string{"rule 2", "rule 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateRules("seed-to-soil", tt.rules)

			var codes, locs []string
			for _, e := range res.Errors {
				codes = append(codes, e.Code)
				locs = append(locs, e.Location)
				assert.Equal(t, "seed-to-soil", e.Stage)
			}

			assert.Equal(t, tt.wantCode, codes)
			assert.Equal(t, tt.wantLoc, locs)
		})
	}
}

func TestNewTable_RejectsMalformed(t *testing.T) {
	_, err := NewTable("water-to-light", []Rule{
		{Destination: 88, Source: 18, Length: 7},
		{Destination: 18, Source: 20, Length: 70},
	})
	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), `stage "water-to-light" rule 2: [overlapping_rules]`)
}

func TestValidate(t *testing.T) {
	f := &File{
		Seeds: Numbers(79, 14, 55),
		Stages: []StageDef{
			{From: "seed", To: "soil", Rules: []RuleDef{{Destination: 50, Source: 98, Length: 2}}},
			{From: "water", To: "light", Rules: []RuleDef{{Destination: 1, Source: 1, Length: 0}}},
		},
	}

	res := Validate(f)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "zero_length_rule", res.Errors[0].Code)
	assert.Equal(t, "water-to-light", res.Errors[0].Stage)

	var warnings []string
	for _, w := range res.Warnings {
		warnings = append(warnings, w.Code)
	}

	assert.ElementsMatch(t, []string{"odd_seed_count", "broken_chain"}, warnings)
}

func TestValidate_Empty(t *testing.T) {
	res := Validate(&File{})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "no_seeds", res.Errors[0].Code)
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "no_stages", res.Infos[0].Code)

	assert.True(t, Validate(nil).HasErrors())
}

func TestFile_Seeds(t *testing.T) {
	f := &File{Seeds: Numbers(79, 14, 55, 13)}

	values, err := f.SeedValues()
	require.NoError(t, err)
	assert.Len(t, values, 4)
	assert.Equal(t, uint64(55), values[2].Start)
	assert.Equal(t, uint64(1), values[2].Len())

	ranges, err := f.SeedRanges()
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, uint64(79), ranges[0].Start)
	assert.Equal(t, uint64(93), ranges[0].End)
	assert.Equal(t, uint64(68), ranges[1].End)
}

func TestFile_SeedRangesRejectsMalformed(t *testing.T) {
	for name, seeds := range map[string][]Number{
		"odd count":   Numbers(1, 2, 3),
		"zero length": Numbers(1, 0),
		"overflow":    Numbers(math.MaxUint64-1, 5),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := (&File{Seeds: seeds}).SeedRanges()
			require.ErrorIs(t, err, ErrMalformedInput)
		})
	}

	_, err := (&File{Seeds: Numbers(math.MaxUint64)}).SeedValues()
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestFile_Tables(t *testing.T) {
	f := &File{Stages: []StageDef{
		{From: "seed", To: "soil", Rules: []RuleDef{{Destination: 50, Source: 98, Length: 2}}},
		{Name: "custom"},
		{},
	}}

	tables, err := f.Tables()
	require.NoError(t, err)
	require.Len(t, tables, 3)

	assert.Equal(t, "seed-to-soil", tables[0].Name)
	assert.Equal(t, "soil", tables[0].To)
	assert.Equal(t, "custom", tables[1].Name)
	assert.Equal(t, "stage 3", tables[2].Name)
	assert.Equal(t, 0, tables[2].Len())

	f.Stages[0].Rules = append(f.Stages[0].Rules, RuleDef{Destination: 0, Source: 99, Length: 1})
	_, err = f.Tables()
	require.ErrorIs(t, err, ErrMalformedInput)
}
