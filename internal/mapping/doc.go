// Package mapping provides the stage tables that remap category values, the
// YAML document format they are loaded from, and validation.
//
// # Tables
//
// A Table is one category transition (e.g. soil -> fertilizer) made of
// disjoint Rules. Each rule maps [Source, Source+Length) onto
// [Destination, Destination+Length) keeping offsets. Values no rule claims
// pass through unchanged.
//
// Rules are validated and sorted by source at construction, so Apply is a
// single left-to-right sweep: the input interval is cut at every rule
// boundary it crosses and each slice is either shifted by exactly one rule or
// forwarded as is. The slices cover the input exactly and never overlap.
//
// # Document format
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    rules:
//	      # destination, source, length
//	      - [50, 98, 2]
//	      - {destination: 52, source: 50, length: 48}
//
// Numbers must be non-negative and fit in uint64. Seeds are read either as
// individual values or as (start, length) pairs.
//
// # Validation
//
// Zero lengths, overlapping sources within one stage and ends that overflow
// uint64 are rejected when a Table is built. Errors wrap ErrMalformedInput
// and name the stage and rule involved.
package mapping
