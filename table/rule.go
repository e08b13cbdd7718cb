package table

import (
	"fmt"

	"github.com/liznear/almanac-from-scratch/model"
)

// Rule translates every value of its source interval to the destination
// interval of the same length.
//
// A value v in source is translated to dest + (v - source.Start). Rules are
// immutable once built.
type Rule struct {
	source model.Interval
	dest   uint64
}

// NewRule builds a rule from the almanac triple "dest src length".
func NewRule(dest, src, length uint64) (Rule, error) {
	source, err := model.FromStartLen(src, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rule: bad source: %w", err)
	}
	if _, err := model.FromStartLen(dest, length); err != nil {
		return Rule{}, fmt.Errorf("rule: bad destination: %w", err)
	}
	return Rule{source: source, dest: dest}, nil
}

// MustNewRule is like NewRule but panics on bad input. It is meant for literal
// rules in tests and examples.
func MustNewRule(dest, src, length uint64) Rule {
	r, err := NewRule(dest, src, length)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) Source() model.Interval {
	return r.source
}

func (r Rule) Destination() model.Interval {
	return model.NewInterval(r.dest, r.dest+r.source.Len())
}

// Apply translates v. It returns false if v is not in the rule's source.
func (r Rule) Apply(v uint64) (uint64, bool) {
	if !r.source.Contains(v) {
		return 0, false
	}
	return r.translate(v), true
}

func (r Rule) translate(v uint64) uint64 {
	return r.dest + (v - r.source.Start)
}

// translateRange shifts both ends of a sub-interval of the source by the same
// constant.
func (r Rule) translateRange(i model.Interval) model.Interval {
	return model.NewInterval(r.translate(i.Start), r.translate(i.End))
}

// Split is the result of applying a rule to an interval.
//
// Matched is already translated and is meaningful only when Overlap is not
// Outside. Unmatched holds the untranslated pieces of the input that the rule
// did not claim, in ascending order.
type Split struct {
	Overlap   Overlap
	Matched   model.Interval
	Unmatched []model.Interval
}

// HasMatch reports whether the rule claimed any part of the input.
func (s Split) HasMatch() bool {
	return s.Overlap != Outside
}

// classify returns how source sits relative to in.
func classify(source, in model.Interval) Overlap {
	switch {
	case !model.HasOverlap(source, in):
		return Outside
	case source.Covers(in):
		return Inside
	case source.Start > in.Start && source.End >= in.End:
		return SplitByStart
	case source.Start <= in.Start:
		// source.End < in.End, otherwise source would cover in.
		return SplitByEnd
	default:
		return Straddle
	}
}

// ApplyRange splits in against the rule's source.
//
// The length of Matched plus the lengths of Unmatched always add up to the
// length of in.
func (r Rule) ApplyRange(in model.Interval) Split {
	split := Split{Overlap: classify(r.source, in)}
	switch split.Overlap {
	case Outside:
		split.Unmatched = []model.Interval{in}
	case Inside:
		split.Matched = r.translateRange(in)
	case SplitByStart:
		split.Matched = r.translateRange(model.NewInterval(r.source.Start, in.End))
		split.Unmatched = []model.Interval{model.NewInterval(in.Start, r.source.Start)}
	case SplitByEnd:
		split.Matched = r.translateRange(model.NewInterval(in.Start, r.source.End))
		split.Unmatched = []model.Interval{model.NewInterval(r.source.End, in.End)}
	case Straddle:
		split.Matched = r.translateRange(r.source)
		split.Unmatched = []model.Interval{
			model.NewInterval(in.Start, r.source.Start),
			model.NewInterval(r.source.End, in.End),
		}
	}
	return split
}

// ApplyRanges runs ApplyRange over every interval of pending. It returns the
// translated pieces the rule claimed and the pieces left for the next rule.
//
// pending is not modified.
func (r Rule) ApplyRanges(pending []model.Interval) (matched, unmatched []model.Interval) {
	for _, in := range pending {
		split := r.ApplyRange(in)
		if split.HasMatch() {
			matched = append(matched, split.Matched)
		}
		unmatched = append(unmatched, split.Unmatched...)
	}
	return matched, unmatched
}

// String returns the rule in the almanac "dest src length" form.
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.dest, r.source.Start, r.source.Len())
}
