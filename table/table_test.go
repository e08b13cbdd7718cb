package table

import (
	"reflect"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/liznear/almanac-from-scratch/model"
)

func seedToSoil() *Table {
	return New("seed-to-soil",
		MustNewRule(50, 98, 2),
		MustNewRule(52, 50, 48),
	)
}

// values expands intervals into a sorted list of every value they hold,
// keeping duplicates.
func values(intervals []model.Interval) []uint64 {
	var ret []uint64
	for _, i := range intervals {
		for v := i.Start; v < i.End; v++ {
			ret = append(ret, v)
		}
	}
	slices.Sort(ret)
	return ret
}

func TestTable_Apply(t *testing.T) {
	table := seedToSoil()
	for i := uint64(0); i < 50; i++ {
		if got := table.Apply(i); got != i {
			t.Errorf("Apply(%d): got %d, want %d", i, got, i)
		}
	}
	for i := uint64(50); i < 98; i++ {
		if got := table.Apply(i); got != i+2 {
			t.Errorf("Apply(%d): got %d, want %d", i, got, i+2)
		}
	}
	for i := uint64(98); i < 100; i++ {
		if got := table.Apply(i); got != i-48 {
			t.Errorf("Apply(%d): got %d, want %d", i, got, i-48)
		}
	}
	for i := uint64(100); i < 150; i++ {
		if got := table.Apply(i); got != i {
			t.Errorf("Apply(%d): got %d, want %d", i, got, i)
		}
	}
}

func TestTable_ApplyRanges(t *testing.T) {
	table := seedToSoil()
	got := table.ApplyRanges([]model.Interval{model.NewInterval(0, 150)})
	want := []model.Interval{
		model.NewInterval(50, 52),
		model.NewInterval(52, 100),
		model.NewInterval(0, 50),
		model.NewInterval(100, 150),
	}
	sortIntervals(got)
	sortIntervals(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func sortIntervals(intervals []model.Interval) {
	slices.SortFunc(intervals, func(a, b model.Interval) int {
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}
			return 1
		}
		if a.End < b.End {
			return -1
		}
		if a.End > b.End {
			return 1
		}
		return 0
	})
}

func TestTable_ApplyRangesMatchesScalar(t *testing.T) {
	tables := []*Table{
		seedToSoil(),
		New("soil-to-fertilizer",
			MustNewRule(0, 15, 37),
			MustNewRule(37, 52, 2),
			MustNewRule(39, 0, 15),
		),
		New("fertilizer-to-water",
			MustNewRule(49, 53, 8),
			MustNewRule(0, 11, 42),
			MustNewRule(42, 0, 7),
			MustNewRule(57, 7, 4),
		),
		New("empty"),
	}
	inputs := [][]model.Interval{
		{model.NewInterval(0, 120)},
		{model.NewInterval(79, 93), model.NewInterval(55, 68)},
		{model.NewInterval(10, 20), model.NewInterval(15, 60), model.NewInterval(5, 5)},
	}
	for _, table := range tables {
		for _, in := range inputs {
			got := values(table.ApplyRanges(in))
			var want []uint64
			for _, v := range values(in) {
				want = append(want, table.Apply(v))
			}
			slices.Sort(want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Table %s on %v: got values %v, want %v", table.Name(), in, got, want)
			}
		}
	}
}

func TestTable_ApplyRangesIdentity(t *testing.T) {
	table := seedToSoil()
	in := []model.Interval{model.NewInterval(0, 50), model.NewInterval(100, 1000)}
	got := table.ApplyRanges(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Got %v, want %v", got, in)
	}

	// Applying an already translated set to a table whose rules miss it is a no-op.
	matched := New("matched", MustNewRule(0, 2000, 10)).ApplyRanges(got)
	if !reflect.DeepEqual(matched, got) {
		t.Errorf("Got %v, want %v", matched, got)
	}
}

func TestTable_ApplyRangesKeepsInput(t *testing.T) {
	table := seedToSoil()
	in := []model.Interval{model.NewInterval(40, 60), model.NewInterval(90, 110)}
	snapshot := append([]model.Interval(nil), in...)
	_ = table.ApplyRanges(in)
	if !reflect.DeepEqual(in, snapshot) {
		t.Errorf("Input was modified: got %v, want %v", in, snapshot)
	}
}

func TestTable_NoRules(t *testing.T) {
	table := New("humidity-to-location")
	if got := table.Apply(42); got != 42 {
		t.Errorf("Got %d, want 42", got)
	}
	in := []model.Interval{model.NewInterval(1, 3)}
	if got := table.ApplyRanges(in); !reflect.DeepEqual(got, in) {
		t.Errorf("Got %v, want %v", got, in)
	}
	if !table.Disjoint() {
		t.Errorf("A table without rules should be disjoint")
	}
}

func TestTable_Overlaps(t *testing.T) {
	tcs := []struct {
		name         string
		rules        []Rule
		wantDisjoint bool
		want         [][2]int
	}{
		{
			name:         "Disjoint",
			rules:        []Rule{MustNewRule(50, 98, 2), MustNewRule(52, 50, 48)},
			wantDisjoint: true,
		},
		{
			name:         "Adjacent",
			rules:        []Rule{MustNewRule(0, 10, 10), MustNewRule(0, 0, 10)},
			wantDisjoint: true,
		},
		{
			name:         "EmptySourceInside",
			rules:        []Rule{MustNewRule(0, 0, 10), MustNewRule(100, 5, 0)},
			wantDisjoint: true,
		},
		{
			name: "EmptySourceAmongOverlaps",
			rules: []Rule{
				MustNewRule(0, 0, 10),
				MustNewRule(0, 5, 10),
				MustNewRule(100, 7, 0),
			},
			want: [][2]int{{0, 1}},
		},
		{
			name:  "SameStart",
			rules: []Rule{MustNewRule(0, 10, 10), MustNewRule(100, 10, 1)},
			want:  [][2]int{{0, 1}},
		},
		{
			name: "Chained",
			rules: []Rule{
				MustNewRule(0, 0, 10),
				MustNewRule(0, 5, 10),
				MustNewRule(0, 12, 10),
				MustNewRule(0, 40, 1),
			},
			want: [][2]int{{0, 1}, {1, 2}},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			table := New(tc.name, tc.rules...)
			if got := table.Disjoint(); got != tc.wantDisjoint {
				t.Errorf("Got disjoint %v, want %v", got, tc.wantDisjoint)
			}
			if got := table.Overlaps(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Got %v, want %v", got, tc.want)
			}
		})
	}
}

// Overlapping rules are not rejected. The first listed rule wins for single
// values, and for ranges a later rule only sees what earlier rules left.
// Whether the two paths should agree once rules overlap is still open.
func TestTable_OverlappingRulesFirstWins(t *testing.T) {
	table := New("overlapping",
		MustNewRule(100, 0, 10),
		MustNewRule(200, 5, 10),
	)
	if got := table.Apply(7); got != 107 {
		t.Errorf("Apply(7): got %d, want 107", got)
	}
	if got := table.Apply(12); got != 207 {
		t.Errorf("Apply(12): got %d, want 207", got)
	}

	got := table.ApplyRanges([]model.Interval{model.NewInterval(0, 20)})
	want := []model.Interval{
		model.NewInterval(100, 110),
		model.NewInterval(205, 210),
		model.NewInterval(15, 20),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %s, want %s", spew.Sdump(got), spew.Sdump(want))
	}
}

func TestTable_IndexMatchesScan(t *testing.T) {
	rules := []Rule{
		MustNewRule(60, 56, 37),
		MustNewRule(56, 93, 4),
		MustNewRule(1000, 200, 1),
	}
	indexed := New("indexed", rules...)
	if !indexed.Disjoint() {
		t.Fatalf("Expected disjoint rules")
	}
	for v := uint64(0); v < 250; v++ {
		want := v
		for _, r := range rules {
			if out, ok := r.Apply(v); ok {
				want = out
				break
			}
		}
		if got := indexed.Apply(v); got != want {
			t.Errorf("Apply(%d): got %d, want %d", v, got, want)
		}
	}
}

func TestTable_RulesIsCopy(t *testing.T) {
	table := seedToSoil()
	rules := table.Rules()
	rules[0] = MustNewRule(0, 0, 1)
	if got := table.Rules()[0].String(); got != "50 98 2" {
		t.Errorf("Got %q, want %q", got, "50 98 2")
	}
}

func TestTable_String(t *testing.T) {
	want := "seed-to-soil map:\n50 98 2\n52 50 48\n"
	if got := seedToSoil().String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
