package validation

import (
	"errors"
	"testing"

	"wdbc-analysis/utils"
)

func alternatingLabels(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		if i%2 == 0 {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}
	return y
}

func TestStratifiedKFoldCoversEveryIndexOnce(t *testing.T) {
	y := alternatingLabels(20)
	folds, err := StratifiedKFold(y, 5, 1)
	if err != nil {
		t.Fatalf("StratifiedKFold: %v", err)
	}
	if len(folds) != 5 {
		t.Fatalf("folds = %d, want 5", len(folds))
	}
	seen := make([]int, 20)
	for _, f := range folds {
		for _, i := range f {
			seen[i]++
		}
	}
	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d assigned %d times", i, c)
		}
	}
}

func TestStratifiedKFoldKeepsClassMix(t *testing.T) {
	y := alternatingLabels(20)
	folds, err := StratifiedKFold(y, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	for fi, f := range folds {
		pos := 0
		for _, i := range f {
			if y[i] > 0 {
				pos++
			}
		}
		// 10 positives over 5 folds: exactly 2 per fold
		if pos != 2 {
			t.Errorf("fold %d has %d positives, want 2", fi, pos)
		}
	}
}

func TestStratifiedKFoldDeterministic(t *testing.T) {
	y := alternatingLabels(30)
	a, err := StratifiedKFold(y, 5, 99)
	if err != nil {
		t.Fatal(err)
	}
	b, err := StratifiedKFold(y, 5, 99)
	if err != nil {
		t.Fatal(err)
	}
	for fi := range a {
		if len(a[fi]) != len(b[fi]) {
			t.Fatalf("fold %d sizes differ", fi)
		}
		for i := range a[fi] {
			if a[fi][i] != b[fi][i] {
				t.Fatalf("fold %d index %d differs", fi, i)
			}
		}
	}
}

func TestStratifiedKFoldErrors(t *testing.T) {
	if _, err := StratifiedKFold(alternatingLabels(10), 1, 1); !errors.Is(err, utils.ErrBadFoldCount) {
		t.Errorf("k=1: err = %v", err)
	}
	if _, err := StratifiedKFold([]float64{1, 1, 1, 1}, 2, 1); !errors.Is(err, utils.ErrSingleClass) {
		t.Errorf("single class: err = %v", err)
	}
	if _, err := StratifiedKFold(alternatingLabels(6), 5, 1); !errors.Is(err, utils.ErrClassTooSmall) {
		t.Errorf("class smaller than k: err = %v", err)
	}
}
