package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"range-remapper/internal/common"
	"range-remapper/internal/interval"
	"range-remapper/internal/mapping"
)

// ErrEmptyInput is returned when there are no initial intervals.
var ErrEmptyInput = errors.New("no initial intervals")

// Config controls how a pipeline runs.
type Config struct {
	// Workers is the number of goroutines splitting intervals within a
	// stage. Values below 2 run sequentially.
	Workers int
	// Coalesce merges overlapping and adjacent intervals between stages.
	// It never changes the minimum, only the shape of the set.
	Coalesce bool
	// Logger receives one debug entry per stage. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns a sequential, silent configuration.
func DefaultConfig() Config {
	return Config{Workers: 1, Logger: zap.NewNop()}
}

// Pipeline is an ordered chain of stages. It holds no per-run state and may
// be shared.
type Pipeline struct {
	stages []*mapping.Table
	cfg    Config
}

// New builds a pipeline over stages, applied in slice order.
func New(stages []*mapping.Table, cfg Config) *Pipeline {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return &Pipeline{stages: slices.Clone(stages), cfg: cfg}
}

// Then returns a pipeline running p's stages followed by next's. The
// configuration is taken from p.
func (p *Pipeline) Then(next *Pipeline) *Pipeline {
	return New(append(slices.Clone(p.stages), next.stages...), p.cfg)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// StageNames returns the stage names in order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}

	return names
}

// Run transforms initial through every stage and returns the lowest value
// reachable at the end. With no stages it is the lowest initial start.
func (p *Pipeline) Run(initial []interval.Interval) (uint64, error) {
	final, err := p.Transform(initial)
	if err != nil {
		return 0, err
	}

	lowest, _ := final.Min()

	return lowest, nil
}

// Transform returns the interval set after the last stage.
func (p *Pipeline) Transform(initial []interval.Interval) (interval.Set, error) {
	current, err := p.begin(initial)
	if err != nil {
		return nil, err
	}

	for _, stage := range p.stages {
		current, _ = p.step(stage, current, false)
	}

	return current, nil
}

// Lookup maps a single value through every stage.
func (p *Pipeline) Lookup(v uint64) uint64 {
	for _, stage := range p.stages {
		v = stage.Lookup(v)
	}

	return v
}

// begin validates and copies the initial set.
func (p *Pipeline) begin(initial []interval.Interval) (interval.Set, error) {
	if len(initial) == 0 {
		return nil, ErrEmptyInput
	}

	for i, iv := range initial {
		if iv.IsEmpty() {
			return nil, fmt.Errorf("%w: initial interval %d %s is empty", mapping.ErrMalformedInput, i, iv)
		}
	}

	return slices.Clone(interval.Set(initial)), nil
}

// step applies one stage to the whole set. Pieces are returned only when
// keep is set.
func (p *Pipeline) step(stage *mapping.Table, in interval.Set, keep bool) (interval.Set, []mapping.Piece) {
	started := time.Now()

	pieces := common.Flatten(p.splitAll(stage, in))

	out := make(interval.Set, len(pieces))
	for i, pc := range pieces {
		out[i] = pc.Result
	}

	if p.cfg.Coalesce {
		out = out.Normalize()
	}

	p.cfg.Logger.Debug("stage applied",
		zap.String("stage", stage.Name),
		zap.Int("rules", stage.Len()),
		zap.Int("intervals_in", len(in)),
		zap.Int("intervals_out", len(out)),
		zap.Duration("elapsed", time.Since(started)),
	)

	if !keep {
		return out, nil
	}

	return out, pieces
}

// splitAll splits every interval of in, keeping input order.
func (p *Pipeline) splitAll(stage *mapping.Table, in interval.Set) [][]mapping.Piece {
	out := make([][]mapping.Piece, len(in))

	if p.cfg.Workers < 2 || len(in) < 2 {
		for i, iv := range in {
			out[i] = stage.Split(iv)
		}

		return out
	}

	// Each goroutine owns out[i]; Wait is the barrier before the next stage.
	var g errgroup.Group
	g.SetLimit(min(p.cfg.Workers, len(in)))

	for i, iv := range in {
		g.Go(func() error {
			out[i] = stage.Split(iv)
			return nil
		})
	}

	_ = g.Wait()

	return out
}
