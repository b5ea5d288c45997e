package main

import (
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"wdbc-analysis/ablation"
	"wdbc-analysis/classifier"
	"wdbc-analysis/corr"
	"wdbc-analysis/dataset"
	"wdbc-analysis/report"
	"wdbc-analysis/share/config"
	"wdbc-analysis/share/logger"
	"wdbc-analysis/validation"
	"wdbc-analysis/wdbc_config"
)

// RunAnalysis executes the whole pipeline on one CSV: load, derive, split,
// correlation screening, cost grid search, ablation sweep, hold-out scoring.
// Returns the response, the elapsed seconds, and the first error encountered;
// nothing is reported from a partially failed run.
func RunAnalysis(req *AnalysisRequest) (*AnalysisResponse, float64, error) {
	start := time.Now()
	applyDefaults(req)

	d, err := dataset.Load(req.CSVPath)
	if err != nil {
		return nil, 0, err
	}

	// derived columns in name order, so repeated runs agree
	names := maps.Keys(req.Derived)
	slices.Sort(names)
	for _, name := range names {
		d, err = d.Derive(name, req.Derived[name])
		if err != nil {
			return nil, 0, err
		}
	}

	if err := d.ValidateSchema(); err != nil {
		return nil, 0, err
	}

	part, err := dataset.Split(d, req.EvalRatio, req.Seed)
	if err != nil {
		return nil, 0, err
	}
	logger.Infof("partition: train=%d eval=%d", part.Train.NumRows(), part.Eval.NumRows())

	ranking, err := corr.RankFeatures(part.Train)
	if err != nil {
		return nil, 0, err
	}

	grid := make([]validation.Params, 0, len(req.CostGrid))
	for _, c := range req.CostGrid {
		grid = append(grid, validation.Params{"cost": c})
	}
	gridResult, err := validation.GridSearch(validation.Space{
		Grid: grid,
		New: func(p validation.Params) classifier.Classifier {
			return &classifier.LinearSVM{
				Cost:   p.Get("cost", wdbc_config.DefaultCost),
				Epochs: req.Epochs,
				Seed:   req.Seed,
			}
		},
		Folds: req.Folds,
		Seed:  req.Seed,
	}, part.Train.Matrix(), part.Train.LabelVector())
	if err != nil {
		return nil, 0, err
	}
	bestCost := gridResult.Best.Params.Get("cost", wdbc_config.DefaultCost)
	logger.Infof("grid search selected cost=%g (mean CV accuracy %.4f)", bestCost, gridResult.Best.Mean)

	sweep := ablation.Sweep{
		Part:     part,
		Families: wdbc_config.FeatureFamilies,
		Cost:     bestCost,
		Epochs:   req.Epochs,
		Folds:    req.Folds,
		Seed:     req.Seed,
	}
	baseline, err := sweep.Baseline()
	if err != nil {
		return nil, 0, err
	}
	importance, err := sweep.Run()
	if err != nil {
		return nil, 0, err
	}

	// hold-out scoring of the selected linear model
	svm := &classifier.LinearSVM{Cost: bestCost, Epochs: req.Epochs, Seed: req.Seed}
	if err := svm.Fit(part.Train.Matrix(), part.Train.LabelVector()); err != nil {
		return nil, 0, err
	}
	evalX := part.Eval.Matrix()
	yTrue := part.Eval.LabelVector()
	yPred := make([]float64, len(evalX))
	for i, x := range evalX {
		yPred[i], err = svm.Predict(x)
		if err != nil {
			return nil, 0, err
		}
	}
	cm := validation.Confusion(yTrue, yPred)

	forest := &classifier.RandomForest{Seed: req.Seed}
	if err := forest.Fit(part.Train.Matrix(), part.Train.LabelVector()); err != nil {
		return nil, 0, err
	}

	tree := &classifier.DecisionTree{Config: classifier.TreeConfig{MaxDepth: 3}}
	if err := tree.Fit(part.Train.Matrix(), part.Train.LabelVector()); err != nil {
		return nil, 0, err
	}
	dot, err := tree.ExportDOT(part.Train.Columns())
	if err != nil {
		return nil, 0, err
	}

	report.RenderCorrelation(os.Stdout, ranking, req.TopCorr)
	report.RenderGrid(os.Stdout, gridResult.Trials, gridResult.Best)
	report.RenderImportance(os.Stdout, baseline, importance)
	report.RenderConfusion(os.Stdout, cm)

	resp := &AnalysisResponse{
		Observations: d.NumRows(),
		TrainSize:    part.Train.NumRows(),
		EvalSize:     part.Eval.NumRows(),
		BestCost:     bestCost,
		Baseline:     baseline,
		Importance:   importance,
		Correlation:  ranking,
		GridTrials:   gridResult.Trials,
		Confusion:    cm,
		ForestOOB:    forest.OOBAccuracy(),
		TreeDot:      dot,
	}
	return resp, time.Since(start).Seconds(), nil
}

func applyDefaults(req *AnalysisRequest) {
	sweep := config.All
	if req.EvalRatio == 0 {
		req.EvalRatio = wdbc_config.DefaultEvalRatio
		if sweep != nil && sweep.Sweep.EvalRatio != 0 {
			req.EvalRatio = sweep.Sweep.EvalRatio
		}
	}
	if req.Folds == 0 {
		req.Folds = wdbc_config.DefaultFolds
		if sweep != nil && sweep.Sweep.Folds != 0 {
			req.Folds = sweep.Sweep.Folds
		}
	}
	if req.Seed == 0 {
		req.Seed = wdbc_config.DefaultSeed
		if sweep != nil && sweep.Sweep.Seed != 0 {
			req.Seed = sweep.Sweep.Seed
		}
	}
	if req.Epochs == 0 {
		req.Epochs = wdbc_config.DefaultEpochs
		if sweep != nil && sweep.Sweep.Epochs != 0 {
			req.Epochs = sweep.Sweep.Epochs
		}
	}
	if len(req.CostGrid) == 0 {
		req.CostGrid = wdbc_config.DefaultCostGrid
		if sweep != nil && len(sweep.Sweep.CostGrid) != 0 {
			req.CostGrid = sweep.Sweep.CostGrid
		}
	}
	if req.TopCorr == 0 {
		req.TopCorr = 10
	}
}
