package mapping

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/interval"
)

func mustTable(t *testing.T, rules ...Rule) *Table {
	t.Helper()

	tbl, err := NewTable("test", rules)
	require.NoError(t, err)

	return tbl
}

func TestTable_Apply(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
		in    interval.Interval
		want  []interval.Interval
	}{
		{
			name:  "fully inside one rule",
			rules: []Rule{{Destination: 100, Source: 10, Length: 10}},
			in:    interval.Interval{Start: 10, End: 20},
			want:  []interval.Interval{{Start: 100, End: 110}},
		},
		{
			name:  "left remainder passes through",
			rules: []Rule{{Destination: 50, Source: 10, Length: 10}},
			in:    interval.Interval{Start: 5, End: 15},
			want:  []interval.Interval{{Start: 5, End: 10}, {Start: 50, End: 55}},
		},
		{
			name:  "straddles both boundaries",
			rules: []Rule{{Destination: 100, Source: 10, Length: 10}},
			in:    interval.Interval{Start: 0, End: 30},
			want:  []interval.Interval{{Start: 0, End: 10}, {Start: 100, End: 110}, {Start: 20, End: 30}},
		},
		{
			name:  "no rule matches",
			rules: []Rule{{Destination: 100, Source: 10, Length: 10}},
			in:    interval.Interval{Start: 40, End: 45},
			want:  []interval.Interval{{Start: 40, End: 45}},
		},
		{
			name:  "below every rule",
			rules: []Rule{{Destination: 100, Source: 10, Length: 10}},
			in:    interval.Interval{Start: 0, End: 10},
			want:  []interval.Interval{{Start: 0, End: 10}},
		},
		{
			name:  "equal to rule bounds",
			rules: []Rule{{Destination: 0, Source: 10, Length: 10}},
			in:    interval.Interval{Start: 10, End: 20},
			want:  []interval.Interval{{Start: 0, End: 10}},
		},
		{
			name:  "gap between two rules",
			rules: []Rule{{Destination: 200, Source: 20, Length: 5}, {Destination: 100, Source: 10, Length: 5}},
			in:    interval.Interval{Start: 12, End: 23},
			want:  []interval.Interval{{Start: 102, End: 105}, {Start: 15, End: 20}, {Start: 200, End: 203}},
		},
		{
			name:  "adjacent rules",
			rules: []Rule{{Destination: 0, Source: 10, Length: 5}, {Destination: 50, Source: 15, Length: 5}},
			in:    interval.Interval{Start: 10, End: 20},
			want:  []interval.Interval{{Start: 0, End: 5}, {Start: 50, End: 55}},
		},
		{
			name:  "no rules",
			rules: nil,
			in:    interval.Interval{Start: 7, End: 9},
			want:  []interval.Interval{{Start: 7, End: 9}},
		},
		{
			name:  "seed-to-soil sample",
			rules: []Rule{{Destination: 50, Source: 98, Length: 2}, {Destination: 52, Source: 50, Length: 48}},
			in:    interval.Interval{Start: 79, End: 93},
			want:  []interval.Interval{{Start: 81, End: 95}},
		},
		{
			name:  "rule reaching max uint64",
			rules: []Rule{{Destination: 0, Source: math.MaxUint64 - 4, Length: 4}},
			in:    interval.Interval{Start: math.MaxUint64 - 8, End: math.MaxUint64},
			want:  []interval.Interval{{Start: math.MaxUint64 - 8, End: math.MaxUint64 - 4}, {Start: 0, End: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustTable(t, tt.rules...)
			assert.Equal(t, tt.want, tbl.Apply(tt.in))
		})
	}
}

func TestTable_SplitOrigins(t *testing.T) {
	tbl := mustTable(t, Rule{Destination: 50, Source: 10, Length: 10})

	pieces := tbl.Split(interval.Interval{Start: 5, End: 15})
	require.Len(t, pieces, 2)

	assert.Equal(t, Piece{
		Source: interval.Interval{Start: 5, End: 10},
		Result: interval.Interval{Start: 5, End: 10},
		Origin: OriginPassthrough,
		Rule:   -1,
	}, pieces[0])
	assert.Equal(t, Piece{
		Source: interval.Interval{Start: 10, End: 15},
		Result: interval.Interval{Start: 50, End: 55},
		Origin: OriginMapped,
		Rule:   0,
	}, pieces[1])

	assert.Nil(t, tbl.Split(interval.Interval{Start: 3, End: 3}))
}

func TestTable_Lookup(t *testing.T) {
	tbl := mustTable(t,
		Rule{Destination: 50, Source: 98, Length: 2},
		Rule{Destination: 52, Source: 50, Length: 48},
	)

	tests := map[uint64]uint64{
		0:   0,
		13:  13,
		14:  14,
		49:  49,
		50:  52,
		55:  57,
		79:  81,
		97:  99,
		98:  50,
		99:  51,
		100: 100,
	}

	for in, want := range tests {
		assert.Equal(t, want, tbl.Lookup(in), "lookup %d", in)
	}
}

func TestIdentity(t *testing.T) {
	tbl := Identity("noop")
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []interval.Interval{{Start: 3, End: 8}}, tbl.Apply(interval.Interval{Start: 3, End: 8}))
}

func TestNewNamedTable(t *testing.T) {
	tbl, err := NewNamedTable("soil", "fertilizer", []Rule{{Destination: 0, Source: 15, Length: 37}})
	require.NoError(t, err)

	assert.Equal(t, "soil-to-fertilizer", tbl.Name)
	assert.Equal(t, "soil", tbl.From)
	assert.Equal(t, "fertilizer", tbl.To)
}

func TestNewTable_DoesNotRetainInput(t *testing.T) {
	rules := []Rule{{Destination: 1, Source: 20, Length: 2}, {Destination: 2, Source: 10, Length: 2}}
	tbl := mustTable(t, rules...)

	rules[0].Length = 500

	assert.Equal(t, []Rule{{Destination: 2, Source: 10, Length: 2}, {Destination: 1, Source: 20, Length: 2}}, tbl.Rules())
}

// randomTable builds n disjoint rules with random gaps and sizes.
func randomTable(t *testing.T, rng *rand.Rand, n int) *Table {
	t.Helper()

	rules := make([]Rule, 0, n)
	next := rng.Uint64N(50)

	for range n {
		length := 1 + rng.Uint64N(40)
		rules = append(rules, Rule{Destination: rng.Uint64N(1_000), Source: next, Length: length})
		next += length + rng.Uint64N(20)
	}

	rng.Shuffle(len(rules), func(i, j int) { rules[i], rules[j] = rules[j], rules[i] })

	return mustTable(t, rules...)
}

func TestTable_SplitPartitionsInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 2023))

	for round := range 500 {
		tbl := randomTable(t, rng, rng.IntN(8))

		start := rng.Uint64N(400)
		in := interval.Interval{Start: start, End: start + 1 + rng.Uint64N(400)}
		pieces := tbl.Split(in)

		sources := make(interval.Set, len(pieces))
		for i, p := range pieces {
			sources[i] = p.Source

			assert.False(t, p.Source.IsEmpty(), "round %d: empty piece", round)
			assert.Equal(t, p.Source.Len(), p.Result.Len(), "round %d: piece changed size", round)
			assert.Equal(t, tbl.Lookup(p.Source.Start), p.Result.Start, "round %d", round)
			assert.Equal(t, tbl.Lookup(p.Source.End-1), p.Result.End-1, "round %d", round)

			if i > 0 {
				assert.Equal(t, pieces[i-1].Source.End, p.Source.Start,
					"round %d: pieces must be contiguous and disjoint: %s", round, spew.Sdump(pieces))
			}
		}

		require.Equal(t, interval.Set{in}, sources.Normalize(), "round %d: %s", round, spew.Sdump(pieces))
		assert.Equal(t, in.Len(), sources.Total(), "round %d", round)
	}
}

func TestOrigin_String(t *testing.T) {
	assert.Equal(t, "Passthrough", OriginPassthrough.String())
	assert.Equal(t, "Mapped", OriginMapped.String())
	assert.Equal(t, "Origin(7)", Origin(7).String())
}
