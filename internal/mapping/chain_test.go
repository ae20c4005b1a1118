package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageNames(stages []StageDef) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.DisplayName(i)
	}

	return names
}

func TestOrderStages_AlreadyChained(t *testing.T) {
	in := []StageDef{
		{From: "seed", To: "soil"},
		{From: "soil", To: "water"},
		{From: "water", To: "location"},
	}

	out, err := OrderStages(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOrderStages_Shuffled(t *testing.T) {
	in := []StageDef{
		{From: "water", To: "location"},
		{From: "seed", To: "soil"},
		{From: "soil", To: "water"},
	}

	out, err := OrderStages(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed-to-soil", "soil-to-water", "water-to-location"}, stageNames(out))
}

func TestOrderStages_UnnamedKeepPosition(t *testing.T) {
	in := []StageDef{
		{Name: "first"},
		{From: "b", To: "c"},
		{From: "a", To: "b"},
	}

	out, err := OrderStages(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "a-to-b", "b-to-c"}, stageNames(out))
}

func TestOrderStages_Cycle(t *testing.T) {
	_, err := OrderStages([]StageDef{
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "cycle")
}

func TestOrderStages_Empty(t *testing.T) {
	out, err := OrderStages(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFile_Ordered(t *testing.T) {
	f := &File{
		Seeds: Numbers(1),
		Stages: []StageDef{
			{From: "b", To: "c", Rules: []RuleDef{{Destination: 100, Source: 10, Length: 1}}},
			{From: "a", To: "b", Rules: []RuleDef{{Destination: 10, Source: 1, Length: 1}}},
		},
	}

	ordered, err := f.Ordered()
	require.NoError(t, err)
	assert.Equal(t, "a", ordered.Stages[0].From)
	assert.Equal(t, "b", f.Stages[0].From, "input must not be modified")
}
