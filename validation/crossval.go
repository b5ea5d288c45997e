package validation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"wdbc-analysis/classifier"
)

// CVResult carries the per-fold accuracies of one cross-validated fit. The
// fold slice is assembled once at the end; nothing is written back into the
// dataset between folds.
type CVResult struct {
	FoldAccuracies []float64
	Mean           float64
	Max            float64
}

// CrossValidate fits a fresh model per fold on the complement and scores it
// on the held-out fold. newModel must return an unfitted classifier; sharing
// a fitted instance across folds would leak state.
func CrossValidate(newModel func() classifier.Classifier, X [][]float64, y []float64, k int, seed int64) (CVResult, error) {
	folds, err := StratifiedKFold(y, k, seed)
	if err != nil {
		return CVResult{}, err
	}

	accuracies := make([]float64, 0, k)
	inFold := make([]bool, len(y))
	for fi, fold := range folds {
		for i := range inFold {
			inFold[i] = false
		}
		for _, i := range fold {
			inFold[i] = true
		}

		var trainX [][]float64
		var trainY []float64
		for i := range y {
			if !inFold[i] {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}

		m := newModel()
		if err := m.Fit(trainX, trainY); err != nil {
			return CVResult{}, fmt.Errorf("fold %d: %w", fi, err)
		}

		yTrue := make([]float64, 0, len(fold))
		yPred := make([]float64, 0, len(fold))
		for _, i := range fold {
			pred, err := m.Predict(X[i])
			if err != nil {
				return CVResult{}, fmt.Errorf("fold %d: %w", fi, err)
			}
			yTrue = append(yTrue, y[i])
			yPred = append(yPred, pred)
		}
		accuracies = append(accuracies, Accuracy(yTrue, yPred))
	}

	return CVResult{
		FoldAccuracies: accuracies,
		Mean:           stat.Mean(accuracies, nil),
		Max:            floats.Max(accuracies),
	}, nil
}
