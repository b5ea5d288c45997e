package dataset

import (
	"errors"
	"testing"

	"wdbc-analysis/utils"
)

func smallDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := New(
		[]string{"radius_mean", "radius_se", "radius_worst", "texture_mean"},
		[][]float64{
			{1, 2, 3, 4},
			{5, 6, 7, 8},
			{9, 10, 11, 12},
			{13, 14, 15, 16},
		},
		[]string{"a", "b", "c", "d"},
		[]float64{1, -1, 1, -1},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestExcludeDropsExactlyMatchingColumns(t *testing.T) {
	d := smallDataset(t)
	reduced, err := d.Exclude("radius")
	if err != nil {
		t.Fatalf("Exclude: %v", err)
	}
	if got, want := reduced.NumColumns(), d.NumColumns()-3; got != want {
		t.Errorf("column count = %d, want %d", got, want)
	}
	if !reduced.HasColumn("texture_mean") {
		t.Error("texture_mean should survive a radius ablation")
	}
	for _, c := range []string{"radius_mean", "radius_se", "radius_worst"} {
		if reduced.HasColumn(c) {
			t.Errorf("%s should have been dropped", c)
		}
	}
	// the source view is untouched
	if d.NumColumns() != 4 {
		t.Errorf("source dataset mutated: %d columns", d.NumColumns())
	}
}

func TestExcludeValuesStayAligned(t *testing.T) {
	d := smallDataset(t)
	reduced, err := d.Exclude("radius")
	if err != nil {
		t.Fatalf("Exclude: %v", err)
	}
	col, err := reduced.ColumnValues("texture_mean")
	if err != nil {
		t.Fatalf("ColumnValues: %v", err)
	}
	want := []float64{4, 8, 12, 16}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("texture_mean[%d] = %v, want %v", i, col[i], want[i])
		}
	}
}

func TestExcludeUnknownPrefixFailsFast(t *testing.T) {
	d := smallDataset(t)
	_, err := d.Exclude("perimeter")
	if !errors.Is(err, utils.ErrNoMatchingColumns) {
		t.Fatalf("err = %v, want ErrNoMatchingColumns", err)
	}
}

func TestSelectKeepsRowOrderAndLabels(t *testing.T) {
	d := smallDataset(t)
	sub := d.Select([]int{2, 0})
	if sub.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", sub.NumRows())
	}
	if sub.ID(0) != "c" || sub.ID(1) != "a" {
		t.Errorf("ids = %s,%s want c,a", sub.ID(0), sub.ID(1))
	}
	if sub.Label(0) != 1 || sub.Label(1) != 1 {
		t.Errorf("labels = %v,%v want 1,1", sub.Label(0), sub.Label(1))
	}
}

func TestNewRejectsBadShapes(t *testing.T) {
	_, err := New([]string{"a"}, nil, nil, nil)
	if !errors.Is(err, utils.ErrEmptyDataset) {
		t.Errorf("empty rows: err = %v", err)
	}
	_, err = New([]string{"a", "a"}, [][]float64{{1, 2}}, []string{"x"}, []float64{1})
	if !errors.Is(err, utils.ErrDuplicateColumn) {
		t.Errorf("duplicate column: err = %v", err)
	}
	_, err = New([]string{"a", "b"}, [][]float64{{1}}, []string{"x"}, []float64{1})
	if !errors.Is(err, utils.ErrRowShape) {
		t.Errorf("ragged row: err = %v", err)
	}
}

func TestClassCount(t *testing.T) {
	d := smallDataset(t)
	if d.ClassCount() != 2 {
		t.Errorf("ClassCount = %d, want 2", d.ClassCount())
	}
	onlyPos := d.Select([]int{0, 2})
	if onlyPos.ClassCount() != 1 {
		t.Errorf("ClassCount = %d, want 1", onlyPos.ClassCount())
	}
}
