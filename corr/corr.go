// Package corr screens measurement columns against the diagnosis label with
// rank and linear correlation, the first look the analysis takes before any
// model is fit.
package corr

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"wdbc-analysis/dataset"
)

// Result is the correlation of one column with the label.
type Result struct {
	Column   string  `json:"column"`
	Pearson  float64 `json:"pearson"`
	Spearman float64 `json:"spearman"`
	Kendall  float64 `json:"kendall"`
}

// Analyze computes per-column correlation against the label, in column order.
func Analyze(d *dataset.Dataset) ([]Result, error) {
	label := d.LabelVector()
	results := make([]Result, 0, d.NumColumns())
	for _, col := range d.Columns() {
		values, err := d.ColumnValues(col)
		if err != nil {
			return nil, err
		}
		r := Result{
			Column:   col,
			Pearson:  zeroIfNaN(stat.Correlation(values, label, nil)),
			Spearman: zeroIfNaN(spearman(values, label)),
			Kendall:  zeroIfNaN(stat.Kendall(values, label, nil)),
		}
		results = append(results, r)
	}
	return results, nil
}

// RankFeatures sorts Analyze output by absolute Pearson correlation,
// strongest first. Column name breaks exact ties so ordering is stable
// across runs.
func RankFeatures(d *dataset.Dataset) ([]Result, error) {
	results, err := Analyze(d)
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := math.Abs(results[i].Pearson), math.Abs(results[j].Pearson)
		if a != b {
			return a > b
		}
		return results[i].Column < results[j].Column
	})
	return results, nil
}

// spearman is Pearson over average-tied ranks.
func spearman(a, b []float64) float64 {
	return stat.Correlation(ranks(a), ranks(b), nil)
}

// ranks assigns 1-based ranks, ties get the average of their positions.
func ranks(v []float64) []float64 {
	n := len(v)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return v[order[i]] < v[order[j]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && v[order[j+1]] == v[order[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[order[k]] = avg
		}
		i = j + 1
	}
	return out
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
