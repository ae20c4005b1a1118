package mapping

import "fmt"

// File represents the root of a YAML stage document.
type File struct {
	// Version of the document schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Seeds are the initial values. They are read either one by one or as
	// (start, length) pairs.
	Seeds []Number `yaml:"seeds"`

	// Stages are applied in order.
	Stages []StageDef `yaml:"stages"`
}

// StageDef defines one category transition.
type StageDef struct {
	// From is the source category (e.g. "seed").
	From string `yaml:"from,omitempty"`

	// To is the target category (e.g. "soil").
	To string `yaml:"to,omitempty"`

	// Name overrides the generated "<from>-to-<to>" name.
	Name string `yaml:"name,omitempty"`

	// Rules may appear in any order; they are sorted when the table is built.
	Rules []RuleDef `yaml:"rules"`
}

// RuleDef is the document form of a Rule.
// YAML formats supported:
//   - Triplet: [destination, source, length]
//   - Mapping: {destination: 50, source: 98, length: 2}
type RuleDef struct {
	Destination Number `yaml:"destination"`
	Source      Number `yaml:"source"`
	Length      Number `yaml:"length"`
}

// Number is a non-negative integer that fits in uint64.
type Number uint64

// DisplayName returns the stage name used in tables and diagnostics. index
// is the stage's position in the document.
func (s StageDef) DisplayName(index int) string {
	switch {
	case s.Name != "":
		return s.Name
	case s.From != "" && s.To != "":
		return stageName(s.From, s.To)
	default:
		return fmt.Sprintf("stage %d", index+1)
	}
}

// ToRules converts the document rules.
func (s StageDef) ToRules() []Rule {
	rules := make([]Rule, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.Rule()
	}

	return rules
}

// Rule converts the definition.
func (r RuleDef) Rule() Rule {
	return Rule{
		Destination: uint64(r.Destination),
		Source:      uint64(r.Source),
		Length:      uint64(r.Length),
	}
}

// RuleDefFrom converts a rule into its document form.
func RuleDefFrom(r Rule) RuleDef {
	return RuleDef{
		Destination: Number(r.Destination),
		Source:      Number(r.Source),
		Length:      Number(r.Length),
	}
}

// Numbers converts plain values into document numbers.
func Numbers(vs ...uint64) []Number {
	out := make([]Number, len(vs))
	for i, v := range vs {
		out[i] = Number(v)
	}

	return out
}
