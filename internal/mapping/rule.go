package mapping

import (
	"fmt"

	"range-remapper/internal/interval"
)

// Rule maps [Source, Source+Length) onto [Destination, Destination+Length).
type Rule struct {
	Destination uint64
	Source      uint64
	Length      uint64
}

// SourceRange returns the values the rule claims.
func (r Rule) SourceRange() interval.Interval {
	return interval.Interval{Start: r.Source, End: r.Source + r.Length}
}

// DestinationRange returns the values the rule produces.
func (r Rule) DestinationRange() interval.Interval {
	return interval.Interval{Start: r.Destination, End: r.Destination + r.Length}
}

// Claims reports whether v falls in the rule's source range.
func (r Rule) Claims(v uint64) bool {
	return v >= r.Source && v-r.Source < r.Length
}

// Map translates a claimed value. v must satisfy Claims.
func (r Rule) Map(v uint64) uint64 {
	return v - r.Source + r.Destination
}

// MapRange translates a sub-range of the source range.
func (r Rule) MapRange(iv interval.Interval) interval.Interval {
	return iv.Rebase(r.Source, r.Destination)
}

// String returns the rule as "dst src len".
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination, r.Source, r.Length)
}
