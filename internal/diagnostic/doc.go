// Package diagnostic provides structured errors, warnings and notes produced
// while validating stage tables and seed lists.
//
// Every diagnostic carries enough context to locate the bad input:
//   - Stage names the mapping table (e.g. "seed-to-soil"), if any
//   - Location names the rule, seed or line inside it
//   - Code is a stable identifier such as "overlapping_rules"
package diagnostic
