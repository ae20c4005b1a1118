package interval

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrEmpty is returned when an interval would contain no values.
	ErrEmpty = errors.New("empty interval")
	// ErrOverflow is returned when an interval end does not fit in uint64.
	ErrOverflow = errors.New("interval end overflows uint64")
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start uint64 `json:"start" yaml:"start" msgpack:"start"`
	End   uint64 `json:"end"   yaml:"end"   msgpack:"end"`
}

// New returns [start, end). It fails when start >= end.
func New(start, end uint64) (Interval, error) {
	if start >= end {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrEmpty, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// FromLength returns [start, start+length). It fails for a zero length or
// when start+length does not fit in uint64.
func FromLength(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("%w: start %d with length 0", ErrEmpty, start)
	}

	end, carry := bits.Add64(start, length, 0)
	if carry != 0 {
		return Interval{}, fmt.Errorf("%w: start %d + length %d", ErrOverflow, start, length)
	}

	return Interval{Start: start, End: end}, nil
}

// Len returns the number of values in the interval.
func (i Interval) Len() uint64 {
	if i.IsEmpty() {
		return 0
	}

	return i.End - i.Start
}

// IsEmpty reports whether the interval contains no values.
func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}

// Contains reports whether v lies in the interval.
func (i Interval) Contains(v uint64) bool {
	return v >= i.Start && v < i.End
}

// Overlaps reports whether the two intervals share at least one value.
func (i Interval) Overlaps(o Interval) bool {
	return !i.Intersection(o).IsEmpty()
}

// Intersection returns the values present in both intervals. The result is
// empty when they do not overlap.
func (i Interval) Intersection(o Interval) Interval {
	start := max(i.Start, o.Start)
	end := min(i.End, o.End)

	return Interval{Start: start, End: max(start, end)}
}

// Prefix returns the part of i strictly left of o.
func (i Interval) Prefix(o Interval) Interval {
	return Interval{Start: min(i.Start, o.Start), End: min(i.End, o.Start)}
}

// Suffix returns the part of i strictly right of o.
func (i Interval) Suffix(o Interval) Interval {
	return Interval{Start: max(i.Start, o.End), End: max(i.End, o.End)}
}

// Rebase moves the interval so that the value from lands on to, keeping every
// offset. The caller guarantees from <= i.Start and that the result fits.
func (i Interval) Rebase(from, to uint64) Interval {
	return Interval{Start: i.Start - from + to, End: i.End - from + to}
}

// Adjacent reports whether o starts exactly where i ends or vice versa.
func (i Interval) Adjacent(o Interval) bool {
	return i.End == o.Start || o.End == i.Start
}

// String returns the interval in [start, end) notation.
func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
