package validation

import (
	"fmt"

	"wdbc-analysis/classifier"
	"wdbc-analysis/share/logger"
	"wdbc-analysis/utils"
)

// Params is one hyper-parameter candidate, by name.
type Params map[string]float64

// Get returns the parameter by name if present and dflt otherwise.
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

// Trial is the cross-validated outcome of one grid candidate.
type Trial struct {
	Params Params
	Mean   float64
	Folds  []float64
}

// Space enumerates the candidates for GridSearch.
type Space struct {
	Grid  []Params
	New   func(Params) classifier.Classifier
	Folds int
	Seed  int64
}

// GridResult keeps the winner and the full trial history.
type GridResult struct {
	Best   Trial
	Trials []Trial
}

// GridSearch evaluates every candidate in enumeration order by k-fold mean
// accuracy. Selection rule: highest mean, first enumerated on ties. Any fit
// failure aborts the whole search; candidates are never silently skipped.
func GridSearch(space Space, X [][]float64, y []float64) (GridResult, error) {
	if len(space.Grid) == 0 {
		return GridResult{}, utils.ErrEmptyGrid
	}

	result := GridResult{Trials: make([]Trial, 0, len(space.Grid))}
	best := -1
	for gi, params := range space.Grid {
		cv, err := CrossValidate(func() classifier.Classifier { return space.New(params) }, X, y, space.Folds, space.Seed)
		if err != nil {
			return GridResult{}, fmt.Errorf("candidate %d %v: %w", gi, params, err)
		}
		trial := Trial{Params: params, Mean: cv.Mean, Folds: cv.FoldAccuracies}
		result.Trials = append(result.Trials, trial)
		logger.Debugf("grid candidate %d %v: mean accuracy %.4f", gi, params, cv.Mean)
		// strictly greater keeps the first enumerated candidate on ties
		if best == -1 || trial.Mean > result.Trials[best].Mean {
			best = gi
		}
	}
	result.Best = result.Trials[best]
	return result, nil
}
