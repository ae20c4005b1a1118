// Package pipeline pushes interval sets through an ordered chain of stage
// tables and reduces the result to its minimum.
//
// Every stage replaces the whole set: each interval is split by the stage's
// table and the pieces of all intervals form the next set. Work grows with
// the number of intervals and rules, never with the size of the values, so
// ranges spanning 10^12 values cost the same as ranges of one.
//
// With Config.Workers > 1 the intervals of one stage are split concurrently.
// The next stage starts only after all of them finish, and results are
// gathered in input order, so output is identical to a sequential run.
package pipeline
