package validation

import (
	"errors"
	"testing"

	"wdbc-analysis/classifier"
	"wdbc-analysis/utils"
)

// paramModel is right on a sample with probability tied to its "quality"
// parameter: quality >= 1 predicts by sign, otherwise it always answers +1.
type paramModel struct {
	quality float64
}

func (m *paramModel) Fit(X [][]float64, y []float64) error { return nil }

func (m *paramModel) Predict(x []float64) (float64, error) {
	if m.quality >= 1 {
		if x[0] >= 0 {
			return 1, nil
		}
		return -1, nil
	}
	return 1, nil
}

func TestGridSearchPicksBestMean(t *testing.T) {
	X, y := separableData(20)
	res, err := GridSearch(Space{
		Grid: []Params{{"quality": 0}, {"quality": 1}, {"quality": 0.5}},
		New: func(p Params) classifier.Classifier {
			return &paramModel{quality: p.Get("quality", 0)}
		},
		Folds: 5,
		Seed:  1,
	}, X, y)
	if err != nil {
		t.Fatalf("GridSearch: %v", err)
	}
	if got := res.Best.Params.Get("quality", -1); got != 1 {
		t.Errorf("best quality = %v, want 1", got)
	}
	if len(res.Trials) != 3 {
		t.Errorf("trials = %d, want 3", len(res.Trials))
	}
}

func TestGridSearchTieBreakFirstEnumerated(t *testing.T) {
	X, y := separableData(20)
	// both candidates behave identically; the first must win
	res, err := GridSearch(Space{
		Grid: []Params{{"quality": 1, "tag": 7}, {"quality": 2, "tag": 8}},
		New: func(p Params) classifier.Classifier {
			return &paramModel{quality: p.Get("quality", 0)}
		},
		Folds: 5,
		Seed:  1,
	}, X, y)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Best.Params.Get("tag", -1); got != 7 {
		t.Errorf("tie went to tag=%v, want the first enumerated (7)", got)
	}
}

func TestGridSearchEmptyGrid(t *testing.T) {
	X, y := separableData(10)
	_, err := GridSearch(Space{
		New:   func(p Params) classifier.Classifier { return &paramModel{} },
		Folds: 2,
		Seed:  1,
	}, X, y)
	if !errors.Is(err, utils.ErrEmptyGrid) {
		t.Fatalf("err = %v, want ErrEmptyGrid", err)
	}
}

func TestParamsGet(t *testing.T) {
	p := Params{"cost": 2.5}
	if p.Get("cost", 1) != 2.5 {
		t.Error("existing key should win")
	}
	if p.Get("missing", 1) != 1 {
		t.Error("missing key should fall back to default")
	}
}
