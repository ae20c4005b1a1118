package pipeline

import (
	"range-remapper/internal/interval"
	"range-remapper/internal/mapping"
)

// Trace records how a set moved through every stage.
type Trace struct {
	Initial interval.Set
	Steps   []Step
}

// Step is the outcome of one stage.
type Step struct {
	Stage string
	// Rules are the stage's rules in source order; Piece.Rule indexes them.
	Rules  []mapping.Rule
	Pieces []mapping.Piece
	Output interval.Set
}

// Final returns the set after the last stage.
func (t *Trace) Final() interval.Set {
	if len(t.Steps) == 0 {
		return t.Initial
	}

	return t.Steps[len(t.Steps)-1].Output
}

// Minimum returns the lowest value of the final set.
func (t *Trace) Minimum() uint64 {
	lowest, _ := t.Final().Min()
	return lowest
}

// Trace runs the pipeline like Transform and keeps every stage's pieces.
func (p *Pipeline) Trace(initial []interval.Interval) (*Trace, error) {
	current, err := p.begin(initial)
	if err != nil {
		return nil, err
	}

	tr := &Trace{Initial: current, Steps: make([]Step, 0, len(p.stages))}

	for _, stage := range p.stages {
		out, pieces := p.step(stage, current, true)
		tr.Steps = append(tr.Steps, Step{
			Stage:  stage.Name,
			Rules:  stage.Rules(),
			Pieces: pieces,
			Output: out,
		})
		current = out
	}

	return tr, nil
}
