package classifier

import (
	"errors"
	"strings"
	"testing"

	"wdbc-analysis/utils"
)

func TestDecisionTreeLearnsThreshold(t *testing.T) {
	X, y := separable2D(40)
	tree := &DecisionTree{Config: TreeConfig{MaxDepth: 3, MinSamplesLeaf: 1}}
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for i := range X {
		pred, err := tree.Predict(X[i])
		if err != nil {
			t.Fatal(err)
		}
		if pred != y[i] {
			t.Fatalf("sample %d misclassified; one threshold separates this data", i)
		}
	}
}

func TestDecisionTreeRespectsMaxDepth(t *testing.T) {
	X, y := separable2D(40)
	tree := &DecisionTree{Config: TreeConfig{MaxDepth: 2, MinSamplesLeaf: 1}}
	if err := tree.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if d := tree.Depth(); d > 2 {
		t.Errorf("depth = %d, want <= 2", d)
	}
}

func TestDecisionTreeDeterministic(t *testing.T) {
	X, y := separable2D(30)
	a := &DecisionTree{Config: TreeConfig{MaxDepth: 4, MinSamplesLeaf: 1}}
	b := &DecisionTree{Config: TreeConfig{MaxDepth: 4, MinSamplesLeaf: 1}}
	if err := a.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	probes := [][]float64{{1, 1}, {5, 5}, {11, 2}, {7, 3}}
	for _, p := range probes {
		pa, _ := a.Predict(p)
		pb, _ := b.Predict(p)
		if pa != pb {
			t.Fatalf("probe %v: predictions differ between identical fits", p)
		}
	}
}

func TestDecisionTreeExportDOT(t *testing.T) {
	X, y := separable2D(20)
	tree := &DecisionTree{Config: TreeConfig{MaxDepth: 2, MinSamplesLeaf: 1}}
	if err := tree.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	dot, err := tree.ExportDOT([]string{"radius_mean", "texture_mean"})
	if err != nil {
		t.Fatalf("ExportDOT: %v", err)
	}
	if !strings.Contains(dot, "digraph") {
		t.Error("dot output misses digraph header")
	}
	if !strings.Contains(dot, "radius_mean") {
		t.Error("dot output misses the split feature name")
	}
}

func TestDecisionTreeErrors(t *testing.T) {
	tree := &DecisionTree{}
	if _, err := tree.Predict([]float64{1}); !errors.Is(err, utils.ErrNotFitted) {
		t.Errorf("unfitted predict: err = %v", err)
	}
	if _, err := tree.ExportDOT(nil); !errors.Is(err, utils.ErrNotFitted) {
		t.Errorf("unfitted export: err = %v", err)
	}
	X, y := separable2D(10)
	if err := tree.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if _, err := tree.ExportDOT([]string{"only_one"}); !errors.Is(err, utils.ErrDimMismatch) {
		t.Errorf("name count mismatch: err = %v", err)
	}
}
