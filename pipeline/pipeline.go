// Package pipeline chains tables so that the output of one table is the input
// of the next, for single values as well as for interval sets.
package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/liznear/almanac-from-scratch/model"
	"github.com/liznear/almanac-from-scratch/table"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Pipeline struct {
	tables []*table.Table
	cfg    *Config
}

func New(tables []*table.Table, opts ...Option) *Pipeline {
	cfg := &Config{
		Workers: 1,
		Logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Pipeline{
		tables: slices.Clone(tables),
		cfg:    cfg,
	}
}

// Tables returns the tables in the order they are applied.
func (p *Pipeline) Tables() []*table.Table {
	return slices.Clone(p.tables)
}

// ApplyScalar sends v through every table in order.
func (p *Pipeline) ApplyScalar(v uint64) uint64 {
	for _, t := range p.tables {
		v = t.Apply(v)
	}
	return v
}

// Apply sends an interval set through every table in order. The returned set
// covers exactly the values reachable from initial, though it may hold
// overlapping or adjacent intervals. initial is not modified.
func (p *Pipeline) Apply(initial []model.Interval) []model.Interval {
	set := initial
	for _, t := range p.tables {
		next := t.ApplyRanges(set)
		p.logStage(t, set, next)
		set = next
	}
	return slices.Clone(set)
}

// ApplyConcurrent is Apply, with each table's input set split into chunks that
// are applied by up to Workers goroutines. Every chunk finishes a table before
// anything moves on to the next one. It returns ctx's error if ctx is done
// before the last table.
func (p *Pipeline) ApplyConcurrent(ctx context.Context, initial []model.Interval) ([]model.Interval, error) {
	if p.cfg.Workers <= 1 {
		return p.Apply(initial), nil
	}
	set := initial
	for _, t := range p.tables {
		next, err := p.applyTable(ctx, t, set)
		if err != nil {
			return nil, fmt.Errorf("pipeline: fail to apply %s: %w", t.Name(), err)
		}
		p.logStage(t, set, next)
		set = next
	}
	return slices.Clone(set), nil
}

func (p *Pipeline) applyTable(ctx context.Context, t *table.Table, set []model.Interval) ([]model.Interval, error) {
	chunks := chunk(set, p.cfg.Workers)
	results := make([][]model.Interval, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i, c := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = t.ApplyRanges(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

// chunk splits set into at most n slices of similar size.
func chunk(set []model.Interval, n int) [][]model.Interval {
	if len(set) == 0 {
		return nil
	}
	size := (len(set) + n - 1) / n
	var ret [][]model.Interval
	for start := 0; start < len(set); start += size {
		ret = append(ret, set[start:min(start+size, len(set))])
	}
	return ret
}

func (p *Pipeline) logStage(t *table.Table, in, out []model.Interval) {
	p.cfg.Logger.Debug("Applied table",
		zap.String("table", t.Name()),
		zap.Int("in", len(in)),
		zap.Int("out", len(out)),
	)
}

// Solve returns the smallest value any of the seeds ends up as. It returns
// false if there are no seeds.
func (p *Pipeline) Solve(seeds []uint64) (uint64, bool) {
	if len(seeds) == 0 {
		return 0, false
	}
	ret := p.ApplyScalar(seeds[0])
	for _, s := range seeds[1:] {
		ret = min(ret, p.ApplyScalar(s))
	}
	return ret, true
}

// SolveRanges returns the smallest value reachable from the given seed ranges.
// It returns false if the ranges hold no value.
//
// A rule shifts a whole piece by one constant, so the smallest value of the
// final set is always the start of one of its intervals.
func (p *Pipeline) SolveRanges(ranges []model.Interval) (uint64, bool) {
	return model.MinStart(p.Apply(ranges))
}

// SolveRangesConcurrent is SolveRanges on top of ApplyConcurrent.
func (p *Pipeline) SolveRangesConcurrent(ctx context.Context, ranges []model.Interval) (uint64, bool, error) {
	set, err := p.ApplyConcurrent(ctx, ranges)
	if err != nil {
		return 0, false, err
	}
	v, ok := model.MinStart(set)
	return v, ok, nil
}

type Config struct {
	// Workers is the number of goroutines ApplyConcurrent may use per table.
	Workers int
	Logger  *zap.Logger
}

type Option func(*Config)

func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = max(n, 1)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
