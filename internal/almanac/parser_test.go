package almanac

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/mapping"
)

func loadSample(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	return string(data)
}

func TestParse_Sample(t *testing.T) {
	f, err := ParseString(loadSample(t))
	require.NoError(t, err)

	assert.Equal(t, mapping.Numbers(79, 14, 55, 13), f.Seeds)
	require.Len(t, f.Stages, 7)

	want := mapping.StageDef{
		From: "seed",
		To:   "soil",
		Rules: []mapping.RuleDef{
			{Destination: 50, Source: 98, Length: 2},
			{Destination: 52, Source: 50, Length: 48},
		},
	}
	if diff := cmp.Diff(want, f.Stages[0]); diff != "" {
		t.Errorf("first stage mismatch (-want +got):\n%s", diff)
	}

	var chain []string
	for _, s := range f.Stages {
		chain = append(chain, s.From)
	}

	chain = append(chain, f.Stages[len(f.Stages)-1].To)
	assert.Equal(t, []string{"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location"}, chain)

	assert.False(t, mapping.Validate(f).HasErrors())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no seeds", input: "", want: `missing "seeds:" line`},
		{name: "map before seeds", input: "a-to-b map:\n1 2 3\n", want: "line 1: map"},
		{name: "duplicate seeds", input: "seeds: 1\nseeds: 2\n", want: "line 2: duplicate"},
		{name: "bad header", input: "seeds: 1\n\nseed to soil map:\n", want: "line 3: map header"},
		{name: "short rule", input: "seeds: 1\n\na-to-b map:\n1 2\n", want: "line 4: rule needs 3 numbers"},
		{name: "negative", input: "seeds: 1 -2\n", want: `line 1: invalid number "-2"`},
		{name: "stray line", input: "seeds: 1\n\n1 2 3\n", want: `line 3: unexpected line`},
		{name: "too large", input: "seeds: 18446744073709551616\n", want: "invalid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.ErrorIs(t, err, ErrSyntax)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_ToleratesWhitespace(t *testing.T) {
	f, err := ParseString("  seeds:   3 4  \r\n\r\n a-to-b map: \n 1  2 3 \n\n\n")
	require.NoError(t, err)

	assert.Equal(t, mapping.Numbers(3, 4), f.Seeds)
	require.Len(t, f.Stages, 1)
	assert.Equal(t, []mapping.Rule{{Destination: 1, Source: 2, Length: 3}}, f.Stages[0].ToRules())
}

func TestWrite_RoundTrip(t *testing.T) {
	f, err := ParseString(loadSample(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))
	assert.Equal(t, loadSample(t), buf.String())

	again, err := ParseString(buf.String())
	require.NoError(t, err)

	if diff := cmp.Diff(f, again); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}
