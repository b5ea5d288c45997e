package classifier

import (
	"fmt"

	"wdbc-analysis/utils"
)

// Classifier is a binary classifier over numeric feature vectors.
// Labels are +1 (malignant) and -1 (benign).
type Classifier interface {
	Fit(X [][]float64, y []float64) error
	Predict(x []float64) (float64, error)
}

// checkTrainingData rejects inputs no classifier can be fit on. A reduced
// view that lost every predictor or every class must fail here, before any
// accuracy is produced.
func checkTrainingData(X [][]float64, y []float64) error {
	if len(X) == 0 || len(y) == 0 {
		return utils.ErrEmptyDataset
	}
	if len(X) != len(y) {
		return fmt.Errorf("X=%d y=%d: %w", len(X), len(y), utils.ErrRowShape)
	}
	if len(X[0]) == 0 {
		return utils.ErrNoPredictors
	}
	width := len(X[0])
	for i, row := range X {
		if len(row) != width {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), width, utils.ErrRowShape)
		}
	}
	pos, neg := false, false
	for _, v := range y {
		if v > 0 {
			pos = true
		} else {
			neg = true
		}
	}
	if !pos || !neg {
		return utils.ErrSingleClass
	}
	return nil
}
