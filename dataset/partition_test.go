package dataset

import (
	"errors"
	"testing"

	"wdbc-analysis/utils"
)

func balancedDataset(t *testing.T, n int) *Dataset {
	t.Helper()
	columns := []string{"radius_mean", "texture_mean"}
	rows := make([][]float64, n)
	ids := make([]string, n)
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = []float64{float64(i), float64(n - i)}
		ids[i] = string(rune('a' + i%26))
		if i%2 == 0 {
			labels[i] = 1
		} else {
			labels[i] = -1
		}
	}
	d, err := New(columns, rows, ids, labels)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSplitDisjointUnion(t *testing.T) {
	d := balancedDataset(t, 20)
	p, err := Split(d, 0.2, 7)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if got := p.Train.NumRows() + p.Eval.NumRows(); got != d.NumRows() {
		t.Errorf("train+eval = %d, want %d", got, d.NumRows())
	}
	seen := map[float64]int{}
	for i := 0; i < p.Train.NumRows(); i++ {
		seen[p.Train.Matrix()[i][0]]++
	}
	for i := 0; i < p.Eval.NumRows(); i++ {
		seen[p.Eval.Matrix()[i][0]]++
	}
	for v, c := range seen {
		if c != 1 {
			t.Errorf("row with radius %v appears %d times across the partition", v, c)
		}
	}
}

func TestSplitStratifies(t *testing.T) {
	d := balancedDataset(t, 20)
	p, err := Split(d, 0.2, 7)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	pos := 0
	for i := 0; i < p.Eval.NumRows(); i++ {
		if p.Eval.Label(i) > 0 {
			pos++
		}
	}
	// 10/10 classes with ratio 0.2 puts exactly 2 of each class in eval
	if pos != 2 || p.Eval.NumRows() != 4 {
		t.Errorf("eval has %d rows with %d positives, want 4 and 2", p.Eval.NumRows(), pos)
	}
}

func TestSplitDeterministic(t *testing.T) {
	d := balancedDataset(t, 20)
	p1, err := Split(d, 0.2, 42)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Split(d, 0.2, 42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < p1.Eval.NumRows(); i++ {
		if p1.Eval.ID(i) != p2.Eval.ID(i) {
			t.Fatalf("eval row %d differs between identical splits", i)
		}
	}
}

func TestSplitErrors(t *testing.T) {
	d := balancedDataset(t, 20)
	if _, err := Split(d, 0, 1); !errors.Is(err, utils.ErrBadRatio) {
		t.Errorf("ratio 0: err = %v", err)
	}
	if _, err := Split(d, 1.5, 1); !errors.Is(err, utils.ErrBadRatio) {
		t.Errorf("ratio 1.5: err = %v", err)
	}
	single := d.Select([]int{0, 2, 4, 6})
	if _, err := Split(single, 0.25, 1); !errors.Is(err, utils.ErrSingleClass) {
		t.Errorf("single class: err = %v", err)
	}
}
