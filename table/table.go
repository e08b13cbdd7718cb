package table

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/liznear/almanac-from-scratch/model"
)

// Table is one named stage of remapping, e.g. "seed-to-soil".
//
// Rules are kept in the order they were listed. Sources are expected to be
// disjoint. If they are not, the first listed rule that matches a value wins,
// for both Apply and ApplyRanges.
type Table struct {
	name  string
	rules []Rule

	// index maps each non-empty source start to the rule's position. It is nil
	// if any two sources overlap, because a floor lookup can then pick a later
	// rule than the first match.
	index *treemap.Map[uint64, int]
}

func New(name string, rules ...Rule) *Table {
	t := &Table{
		name:  name,
		rules: append([]Rule(nil), rules...),
	}
	t.index = buildIndex(t.rules)
	return t
}

// buildIndex returns nil if two non-empty sources overlap.
func buildIndex(rules []Rule) *treemap.Map[uint64, int] {
	index := treemap.New[uint64, int]()
	for i, r := range rules {
		if r.source.Empty() {
			continue
		}
		if _, ok := index.Get(r.source.Start); ok {
			return nil
		}
		index.Put(r.source.Start, i)
	}
	// Sorted by start, disjoint sources never begin before the previous one ends.
	var prev *model.Interval
	iter := index.Iterator()
	for iter.Next() {
		source := rules[iter.Value()].source
		if prev != nil && source.Start < prev.End {
			return nil
		}
		prev = &source
	}
	return index
}

func (t *Table) Name() string {
	return t.name
}

// Rules returns a copy of the rules in listed order.
func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Disjoint reports whether no two rule sources overlap.
func (t *Table) Disjoint() bool {
	return t.index != nil
}

// Overlaps returns the index pairs of rules whose sources overlap, in listed
// order. Empty sources never overlap anything.
func (t *Table) Overlaps() [][2]int {
	if t.Disjoint() {
		return nil
	}
	var ret [][2]int
	for i := range t.rules {
		for j := i + 1; j < len(t.rules); j++ {
			if model.HasOverlap(t.rules[i].source, t.rules[j].source) {
				ret = append(ret, [2]int{i, j})
			}
		}
	}
	return ret
}

// Apply translates v with the first rule whose source contains it. Values no
// rule claims are returned unchanged.
func (t *Table) Apply(v uint64) uint64 {
	if t.index != nil {
		if _, i, ok := t.index.Floor(v); ok {
			if out, ok := t.rules[i].Apply(v); ok {
				return out
			}
		}
		return v
	}
	for _, r := range t.rules {
		if out, ok := r.Apply(v); ok {
			return out
		}
	}
	return v
}

// ApplyRanges translates every value of the input intervals through the table.
//
// Rules are tried in listed order. Whatever a rule claims is translated and
// final for this table. Only the pieces it leaves unmatched are shown to the
// next rule, and whatever is still unmatched after the last rule passes through
// unchanged. The output is neither sorted nor merged. in is not modified.
func (t *Table) ApplyRanges(in []model.Interval) []model.Interval {
	var out []model.Interval
	pending := in
	for _, r := range t.rules {
		var matched []model.Interval
		matched, pending = r.ApplyRanges(pending)
		out = append(out, matched...)
		if len(pending) == 0 {
			break
		}
	}
	return append(out, pending...)
}

func (t *Table) String() string {
	sb := strings.Builder{}
	_, _ = fmt.Fprintf(&sb, "%s map:\n", t.name)
	for _, r := range t.rules {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
