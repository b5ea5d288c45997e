// Package report renders analysis results as console tables.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wdbc-analysis/ablation"
	"wdbc-analysis/corr"
	"wdbc-analysis/validation"
)

// RenderImportance prints the ablation table: accuracy without each family
// and the delta against the all-features baseline. More negative delta means
// the removed family mattered more.
func RenderImportance(w io.Writer, baseline float64, results []ablation.FamilyResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("ABLATION FEATURE IMPORTANCE (baseline %.4f)", baseline)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Removed Family", Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMin: 20},
		{Name: "Accuracy", Align: text.AlignRight, AlignHeader: text.AlignCenter, WidthMin: 10},
		{Name: "Delta", Align: text.AlignRight, AlignHeader: text.AlignCenter, WidthMin: 10},
	})
	t.AppendHeader(table.Row{"Removed Family", "Accuracy", "Delta"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Family, fmt.Sprintf("%.4f", r.Accuracy), fmt.Sprintf("%+.4f", r.Accuracy-baseline)})
	}
	t.Render()
}

// RenderCorrelation prints the top-n label correlations.
func RenderCorrelation(w io.Writer, results []corr.Result, topN int) {
	if topN <= 0 || topN > len(results) {
		topN = len(results)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("LABEL CORRELATION (top %d)", topN)
	t.AppendHeader(table.Row{"Column", "Pearson", "Spearman", "Kendall"})
	for _, r := range results[:topN] {
		t.AppendRow(table.Row{
			r.Column,
			fmt.Sprintf("%.4f", r.Pearson),
			fmt.Sprintf("%.4f", r.Spearman),
			fmt.Sprintf("%.4f", r.Kendall),
		})
	}
	t.Render()
}

// RenderGrid prints every grid-search trial in enumeration order.
func RenderGrid(w io.Writer, trials []validation.Trial, best validation.Trial) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("COST GRID SEARCH")
	t.AppendHeader(table.Row{"Cost", "Mean CV Accuracy", "Selected"})
	for _, trial := range trials {
		mark := ""
		if trial.Params.Get("cost", -1) == best.Params.Get("cost", -2) {
			mark = "*"
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%g", trial.Params.Get("cost", 0)),
			fmt.Sprintf("%.4f", trial.Mean),
			mark,
		})
	}
	t.Render()
}

// RenderConfusion prints the hold-out confusion matrix with derived rates.
func RenderConfusion(w io.Writer, cm validation.ConfusionMatrix) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("HOLD-OUT CONFUSION MATRIX")
	t.AppendHeader(table.Row{"", "Pred M", "Pred B"})
	t.AppendRow(table.Row{"True M", cm.TP, cm.FN})
	t.AppendRow(table.Row{"True B", cm.FP, cm.TN})
	t.AppendSeparator()
	t.AppendRow(table.Row{"accuracy", fmt.Sprintf("%.4f", cm.Accuracy()), ""})
	t.AppendRow(table.Row{"precision", fmt.Sprintf("%.4f", cm.Precision()), ""})
	t.AppendRow(table.Row{"recall", fmt.Sprintf("%.4f", cm.Recall()), ""})
	t.AppendRow(table.Row{"f1", fmt.Sprintf("%.4f", cm.F1()), ""})
	t.Render()
}
