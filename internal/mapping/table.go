package mapping

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sort"

	"range-remapper/internal/interval"
)

// ErrMalformedInput is wrapped by every construction-time validation failure.
var ErrMalformedInput = errors.New("malformed input")

// Table is an immutable stage: disjoint rules sorted by source.
type Table struct {
	// Name identifies the stage in logs and diagnostics (e.g. "seed-to-soil").
	Name string
	// From and To are the category names, when known.
	From string
	To   string

	rules []Rule
}

// Piece is one slice of an input interval after a stage.
type Piece struct {
	// Source is the slice of the input interval.
	Source interval.Interval
	// Result is where Source ends up after the stage.
	Result interval.Interval
	// Origin tells whether a rule claimed Source.
	Origin Origin
	// Rule is the index into Rules of the claiming rule, or -1.
	Rule int
}

// NewTable validates rules and builds a stage. The input slice is not
// retained.
func NewTable(name string, rules []Rule) (*Table, error) {
	diags := ValidateRules(name, rules)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, diags.Error())
	}

	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b Rule) int {
		return cmp.Compare(a.Source, b.Source)
	})

	return &Table{Name: name, rules: sorted}, nil
}

// NewNamedTable builds a stage named "<from>-to-<to>".
func NewNamedTable(from, to string, rules []Rule) (*Table, error) {
	t, err := NewTable(stageName(from, to), rules)
	if err != nil {
		return nil, err
	}

	t.From, t.To = from, to

	return t, nil
}

// Identity returns a stage with no rules.
func Identity(name string) *Table {
	return &Table{Name: name}
}

// Rules returns a copy of the rules in source order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Lookup maps a single value through the stage.
func (t *Table) Lookup(v uint64) uint64 {
	i := t.firstEndingAfter(v)
	if i < len(t.rules) && t.rules[i].Claims(v) {
		return t.rules[i].Map(v)
	}

	return v
}

// Apply maps an interval through the stage. The results cover exactly the
// same number of values as iv and are ordered by the input slice they came
// from.
func (t *Table) Apply(iv interval.Interval) []interval.Interval {
	pieces := t.Split(iv)

	out := make([]interval.Interval, len(pieces))
	for i, p := range pieces {
		out[i] = p.Result
	}

	return out
}

// Split cuts iv at every rule boundary it crosses. Each piece is either
// claimed by exactly one rule or passed through. Pieces are returned in
// ascending source order and their sources partition iv.
func (t *Table) Split(iv interval.Interval) []Piece {
	if iv.IsEmpty() {
		return nil
	}

	pieces := make([]Piece, 0, 3)
	rest := iv

	for i := t.firstEndingAfter(iv.Start); i < len(t.rules) && !rest.IsEmpty(); i++ {
		r := t.rules[i]

		src := r.SourceRange()
		if src.Start >= rest.End {
			break
		}

		if gap := rest.Prefix(src); !gap.IsEmpty() {
			pieces = append(pieces, passthrough(gap))
		}

		if hit := rest.Intersection(src); !hit.IsEmpty() {
			pieces = append(pieces, Piece{
				Source: hit,
				Result: r.MapRange(hit),
				Origin: OriginMapped,
				Rule:   i,
			})
		}

		rest = rest.Suffix(src)
	}

	if !rest.IsEmpty() {
		pieces = append(pieces, passthrough(rest))
	}

	return pieces
}

// firstEndingAfter returns the index of the first rule whose source range
// ends after v.
func (t *Table) firstEndingAfter(v uint64) int {
	return sort.Search(len(t.rules), func(i int) bool {
		return t.rules[i].SourceRange().End > v
	})
}

func passthrough(iv interval.Interval) Piece {
	return Piece{Source: iv, Result: iv, Origin: OriginPassthrough, Rule: -1}
}

func stageName(from, to string) string {
	return from + "-to-" + to
}
