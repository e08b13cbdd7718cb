package pipeline

import (
	"math/big"

	"github.com/liznear/almanac-from-scratch/model"
)

// Stage summarises the interval set right after one table was applied.
type Stage struct {
	Table     string
	Intervals int
	// Coverage counts values once per interval holding them.
	Coverage *big.Int
	Min      uint64
	HasMin   bool
	// Span encloses every non-empty interval of the set.
	Span    model.Interval
	HasSpan bool
}

// Summarize describes set under the given stage name.
func Summarize(name string, set []model.Interval) Stage {
	m, ok := model.MinStart(set)
	span, hasSpan := model.Fusion(set)
	return Stage{
		Table:     name,
		Intervals: len(set),
		Coverage:  model.Coverage(set),
		Min:       m,
		HasMin:    ok,
		Span:      span,
		HasSpan:   hasSpan,
	}
}

// Trace applies the tables like Apply and records a Stage after each one.
func (p *Pipeline) Trace(initial []model.Interval) []Stage {
	stages := make([]Stage, 0, len(p.tables))
	set := initial
	for _, t := range p.tables {
		next := t.ApplyRanges(set)
		p.logStage(t, set, next)
		set = next
		stages = append(stages, Summarize(t.Name(), set))
	}
	return stages
}
