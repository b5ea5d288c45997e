// Package ablation quantifies each feature family's contribution to
// classification accuracy by exclusion: drop the family, retrain the fixed
// linear classifier under k-fold cross-validation, record the accuracy that
// survives. Lower surviving accuracy reads as higher importance of the
// excluded family; the reading is the caller's, not computed here.
package ablation

import (
	"fmt"

	"wdbc-analysis/classifier"
	"wdbc-analysis/dataset"
	"wdbc-analysis/share/logger"
	"wdbc-analysis/utils"
	"wdbc-analysis/validation"
)

// FamilyResult pairs a family name with the best cross-validated accuracy
// achieved without that family.
type FamilyResult struct {
	Family   string  `json:"family"`
	Accuracy float64 `json:"accuracy"`
}

// Sweep holds the fixed inputs of one ablation run. The partition and the
// family enumeration stay constant across iterations; each iteration works
// on independently derived reduced views and shares no mutable state with
// the others.
type Sweep struct {
	Part     dataset.Partition
	Families []string
	Cost     float64
	Epochs   int
	Folds    int
	Seed     int64
}

// Run executes the sweep in family enumeration order, one FamilyResult per
// family. Scoring uses cross-validated accuracy on the training partition;
// the reduced eval view is derived for shape parity but not scored, matching
// the historical behavior of this analysis. Any failure aborts the whole
// sweep: a partial importance table is worse than a hard failure.
func (s Sweep) Run() ([]FamilyResult, error) {
	if len(s.Families) == 0 {
		return nil, utils.ErrNoFamilies
	}

	results := make([]FamilyResult, 0, len(s.Families))
	for _, family := range s.Families {
		reducedTrain, err := s.Part.Train.Exclude(family)
		if err != nil {
			return nil, fmt.Errorf("ablation of %q: %w", family, err)
		}
		if _, err := s.Part.Eval.Exclude(family); err != nil {
			return nil, fmt.Errorf("ablation of %q: %w", family, err)
		}

		if reducedTrain.NumColumns() == 0 {
			return nil, fmt.Errorf("ablation of %q: %w", family, utils.ErrNoPredictors)
		}
		if reducedTrain.ClassCount() < 2 {
			return nil, fmt.Errorf("ablation of %q: %w", family, utils.ErrSingleClass)
		}

		cv, err := validation.CrossValidate(
			s.newModel,
			reducedTrain.Matrix(),
			reducedTrain.LabelVector(),
			s.Folds,
			s.Seed,
		)
		if err != nil {
			return nil, fmt.Errorf("ablation of %q: %w", family, err)
		}

		logger.Infof("ablation %-18s kept %2d columns, best fold accuracy %.4f",
			family, reducedTrain.NumColumns(), cv.Max)
		results = append(results, FamilyResult{Family: family, Accuracy: cv.Max})
	}
	return results, nil
}

// Baseline is the same cross-validated fit with nothing excluded, for
// comparing sweep entries against the full feature set.
func (s Sweep) Baseline() (float64, error) {
	cv, err := validation.CrossValidate(
		s.newModel,
		s.Part.Train.Matrix(),
		s.Part.Train.LabelVector(),
		s.Folds,
		s.Seed,
	)
	if err != nil {
		return 0, err
	}
	return cv.Max, nil
}

func (s Sweep) newModel() classifier.Classifier {
	return &classifier.LinearSVM{Cost: s.Cost, Epochs: s.Epochs, Seed: s.Seed}
}
