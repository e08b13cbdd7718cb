package model

import (
	"fmt"
	"math/big"
)

// Interval is a half-open range of values [Start, End).
//
// An Interval with Start == End is empty. Callers must keep Start <= End; nothing
// in this package validates it.
type Interval struct {
	Start uint64
	End   uint64
}

func NewInterval(start, end uint64) Interval {
	return Interval{Start: start, End: end}
}

// FromStartLen returns [start, start+length). It fails if the end would not fit
// in an uint64.
func FromStartLen(start, length uint64) (Interval, error) {
	end := start + length
	if end < start {
		return Interval{}, fmt.Errorf("interval: %d + %d overflows", start, length)
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Len() uint64 {
	return i.End - i.Start
}

func (i Interval) Empty() bool {
	return i.Start == i.End
}

func (i Interval) Contains(v uint64) bool {
	return i.Start <= v && v < i.End
}

// Covers reports whether every value of o is also in i.
func (i Interval) Covers(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

// HasOverlap reports whether i1 and i2 share at least one value. An empty
// interval holds no value, so it overlaps nothing.
func HasOverlap(i1, i2 Interval) bool {
	if i1.Empty() || i2.Empty() {
		return false
	}
	noOverlap := i1.End <= i2.Start || i1.Start >= i2.End
	return !noOverlap
}

// Fusion returns the smallest interval enclosing all the non-empty intervals.
// The second return value is false if there is nothing to enclose.
func Fusion(intervals []Interval) (Interval, bool) {
	var (
		ret   Interval
		found bool
	)
	for _, i := range intervals {
		if i.Empty() {
			continue
		}
		if !found {
			ret, found = i, true
			continue
		}
		ret.Start = min(i.Start, ret.Start)
		ret.End = max(i.End, ret.End)
	}
	return ret, found
}

// MinStart returns the smallest start among the non-empty intervals.
//
// Empty intervals hold no value, so they never contribute a minimum.
func MinStart(intervals []Interval) (uint64, bool) {
	var (
		ret   uint64
		found bool
	)
	for _, i := range intervals {
		if i.Empty() {
			continue
		}
		if !found || i.Start < ret {
			ret = i.Start
			found = true
		}
	}
	return ret, found
}

// Coverage returns the sum of the lengths of the intervals. Overlapping
// intervals are counted once per interval. The sum of many full-width
// intervals does not fit in an uint64.
func Coverage(intervals []Interval) *big.Int {
	n := new(big.Int)
	var l big.Int
	for _, i := range intervals {
		n.Add(n, l.SetUint64(i.Len()))
	}
	return n
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
