package dataset

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"wdbc-analysis/utils"
)

// Derive appends a feature column computed per row from an arithmetic
// expression over existing columns, e.g. "area_mean / (radius_mean * radius_mean)".
// Column names with spaces must be escaped govaluate-style: [concave points_mean].
// The receiver is unchanged; a new dataset is returned.
func (d *Dataset) Derive(name, expr string) (*Dataset, error) {
	if _, exists := d.colIdx[name]; exists {
		return nil, fmt.Errorf("column %q: %w", name, utils.ErrColumnExists)
	}
	ev, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", expr, err, utils.ErrBadExpression)
	}
	for _, v := range ev.Vars() {
		if _, ok := d.colIdx[v]; !ok {
			return nil, fmt.Errorf("expression %q references unknown column %q: %w", expr, v, utils.ErrMissingColumn)
		}
	}

	params := make(map[string]interface{}, len(d.columns))
	rows := make([][]float64, len(d.rows))
	for i, r := range d.rows {
		for j, c := range d.columns {
			params[c] = r[j]
		}
		res, err := ev.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("row %d: %v: %w", i, err, utils.ErrBadExpression)
		}
		v, ok := res.(float64)
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("row %d produced %v: %w", i, res, utils.ErrBadNumeric)
		}
		nr := make([]float64, len(r)+1)
		copy(nr, r)
		nr[len(r)] = v
		rows[i] = nr
	}

	columns := append(d.Columns(), name)
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Dataset{
		ids:     d.ids,
		labels:  d.labels,
		columns: columns,
		colIdx:  idx,
		rows:    rows,
	}, nil
}
