package report

import (
	"fmt"
	"strings"

	"range-remapper/internal/interval"
	"range-remapper/internal/mapping"
	"range-remapper/internal/pipeline"
)

// Format selects an output encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMsgpack}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown output format %q (want one of %v)", s, Formats)
}

// Seeding names how seeds were turned into intervals.
type Seeding string

const (
	// SeedingValues treats every seed as one value.
	SeedingValues Seeding = "values"
	// SeedingRanges reads seeds as (start, length) pairs.
	SeedingRanges Seeding = "ranges"
)

// Result is the outcome of one or more pipeline runs over a document.
type Result struct {
	Source string       `json:"source" yaml:"source" msgpack:"source"`
	Stages []string     `json:"stages" yaml:"stages" msgpack:"stages"`
	Parts  []PartResult `json:"parts"  yaml:"parts"  msgpack:"parts"`
}

// PartResult is one run.
type PartResult struct {
	Part      int     `json:"part"      yaml:"part"      msgpack:"part"`
	Seeding   Seeding `json:"seeding"   yaml:"seeding"   msgpack:"seeding"`
	Minimum   uint64  `json:"minimum"   yaml:"minimum"   msgpack:"minimum"`
	Intervals int     `json:"intervals" yaml:"intervals" msgpack:"intervals"`
	Values    uint64  `json:"values"    yaml:"values"    msgpack:"values"`
}

// NewPartResult summarises a final interval set.
func NewPartResult(part int, seeding Seeding, final interval.Set) PartResult {
	lowest, _ := final.Min()

	return PartResult{
		Part:      part,
		Seeding:   seeding,
		Minimum:   lowest,
		Intervals: len(final),
		Values:    final.Total(),
	}
}

// TraceReport is the document form of a pipeline trace.
type TraceReport struct {
	Source  string              `json:"source"  yaml:"source"  msgpack:"source"`
	Seeding Seeding             `json:"seeding" yaml:"seeding" msgpack:"seeding"`
	Initial []interval.Interval `json:"initial" yaml:"initial" msgpack:"initial"`
	Stages  []StageReport       `json:"stages"  yaml:"stages"  msgpack:"stages"`
	Minimum uint64              `json:"minimum" yaml:"minimum" msgpack:"minimum"`
}

// StageReport lists the pieces one stage produced.
type StageReport struct {
	Name   string        `json:"name"   yaml:"name"   msgpack:"name"`
	Pieces []PieceReport `json:"pieces" yaml:"pieces" msgpack:"pieces"`
}

// PieceReport is one slice of an interval through a stage.
type PieceReport struct {
	Source interval.Interval `json:"source"         yaml:"source"         msgpack:"source"`
	Result interval.Interval `json:"result"         yaml:"result"         msgpack:"result"`
	Origin string            `json:"origin"         yaml:"origin"         msgpack:"origin"`
	Rule   string            `json:"rule,omitempty" yaml:"rule,omitempty" msgpack:"rule,omitempty"`
}

// FromTrace converts a pipeline trace.
func FromTrace(source string, seeding Seeding, tr *pipeline.Trace) *TraceReport {
	rep := &TraceReport{
		Source:  source,
		Seeding: seeding,
		Initial: tr.Initial,
		Stages:  make([]StageReport, 0, len(tr.Steps)),
		Minimum: tr.Minimum(),
	}

	for _, step := range tr.Steps {
		sr := StageReport{Name: step.Stage, Pieces: make([]PieceReport, 0, len(step.Pieces))}

		for _, pc := range step.Pieces {
			pr := PieceReport{
				Source: pc.Source,
				Result: pc.Result,
				Origin: strings.ToLower(pc.Origin.String()),
			}

			if pc.Origin == mapping.OriginMapped && pc.Rule >= 0 && pc.Rule < len(step.Rules) {
				pr.Rule = step.Rules[pc.Rule].String()
			}

			sr.Pieces = append(sr.Pieces, pr)
		}

		rep.Stages = append(rep.Stages, sr)
	}

	return rep
}
