// Package report renders solve results, stage traces and validation
// diagnostics for the command line.
//
// Text output is colourised with fatih/color when enabled. The structured
// formats (json, yaml, msgpack) share the same field names.
package report
