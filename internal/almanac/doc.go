// Package almanac parses the plain-text almanac format into a stage document.
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The seeds line comes first. Each map block starts with a
// "<from>-to-<to> map:" header followed by one "destination source length"
// line per rule. Blank lines separate blocks.
package almanac
