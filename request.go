package main

import (
	"wdbc-analysis/ablation"
	"wdbc-analysis/corr"
	"wdbc-analysis/validation"
)

// AnalysisRequest drives one full analysis run. Zero-valued fields fall back
// to sweep_config defaults from config.yml.
type AnalysisRequest struct {
	CSVPath   string            `json:"csvPath"`
	EvalRatio float64           `json:"evalRatio"`
	Folds     int               `json:"folds"`
	Seed      int64             `json:"seed"`
	Epochs    int               `json:"epochs"`
	CostGrid  []float64         `json:"costGrid"`
	Derived   map[string]string `json:"derived"`
	TopCorr   int               `json:"topCorr"`
}

type AnalysisResponse struct {
	Observations int                        `json:"observations"`
	TrainSize    int                        `json:"trainSize"`
	EvalSize     int                        `json:"evalSize"`
	BestCost     float64                    `json:"bestCost"`
	Baseline     float64                    `json:"baseline"`
	Importance   []ablation.FamilyResult    `json:"importance"`
	Correlation  []corr.Result              `json:"correlation"`
	GridTrials   []validation.Trial         `json:"gridTrials"`
	Confusion    validation.ConfusionMatrix `json:"confusion"`
	ForestOOB    float64                    `json:"forestOob"`
	TreeDot      string                     `json:"treeDot"`
}
