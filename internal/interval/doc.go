// Package interval provides half-open integer intervals over uint64 and the
// multiset of intervals that flows between pipeline stages.
//
// An Interval [Start, End) can be thought of as a sorted set of integers:
//
//	[79, 93) = 79, 80, ..., 92
//
// All splitting operations return new values; intervals are never changed
// in place.
package interval
