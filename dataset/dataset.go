package dataset

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"wdbc-analysis/utils"
)

// Dataset is an immutable table of tumor observations: one id and one binary
// label per row plus named numeric measurement columns. Reduced views created
// by Exclude/Select share nothing mutable with their source.
type Dataset struct {
	ids     []string
	labels  []float64 // +1 malignant, -1 benign
	columns []string
	colIdx  map[string]int
	rows    [][]float64
}

// New builds a dataset from already parsed values. Mostly used by tests and
// by the synthetic-data paths; CSV input goes through Load.
func New(columns []string, rows [][]float64, ids []string, labels []float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, utils.ErrEmptyDataset
	}
	if len(ids) != len(rows) || len(labels) != len(rows) {
		return nil, fmt.Errorf("ids=%d labels=%d rows=%d: %w", len(ids), len(labels), len(rows), utils.ErrRowShape)
	}
	seen := mapset.NewSet()
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		if !seen.Add(c) {
			return nil, fmt.Errorf("column %q: %w", c, utils.ErrDuplicateColumn)
		}
		idx[c] = i
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), len(columns), utils.ErrRowShape)
		}
	}
	return &Dataset{
		ids:     ids,
		labels:  labels,
		columns: columns,
		colIdx:  idx,
		rows:    rows,
	}, nil
}

func (d *Dataset) NumRows() int {
	return len(d.rows)
}

func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// Columns returns the ordered feature column names.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.colIdx[name]
	return ok
}

func (d *Dataset) ID(i int) string {
	return d.ids[i]
}

func (d *Dataset) Label(i int) float64 {
	return d.labels[i]
}

// LabelVector returns a copy of the label column.
func (d *Dataset) LabelVector() []float64 {
	out := make([]float64, len(d.labels))
	copy(out, d.labels)
	return out
}

// Matrix returns the measurement rows. Callers must treat it as read only.
func (d *Dataset) Matrix() [][]float64 {
	return d.rows
}

// ColumnValues returns a copy of one measurement column.
func (d *Dataset) ColumnValues(name string) ([]float64, error) {
	col, ok := d.colIdx[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, utils.ErrMissingColumn)
	}
	out := make([]float64, len(d.rows))
	for i, r := range d.rows {
		out[i] = r[col]
	}
	return out, nil
}

// ClassCount returns how many distinct label values are present.
func (d *Dataset) ClassCount() int {
	pos, neg := 0, 0
	for _, y := range d.labels {
		if y > 0 {
			pos++
		} else {
			neg++
		}
	}
	n := 0
	if pos > 0 {
		n++
	}
	if neg > 0 {
		n++
	}
	return n
}

// Exclude derives a reduced view dropping every column whose name starts with
// one of the prefixes. A prefix matching zero columns is an error, never a
// silent no-op: training on an unreduced dataset would mislabel the result.
func (d *Dataset) Exclude(prefixes ...string) (*Dataset, error) {
	dropped := mapset.NewSet()
	for _, p := range prefixes {
		matched := 0
		for _, c := range d.columns {
			if strings.HasPrefix(c, p) {
				dropped.Add(c)
				matched++
			}
		}
		if matched == 0 {
			return nil, fmt.Errorf("family %q: %w", p, utils.ErrNoMatchingColumns)
		}
	}

	kept := make([]string, 0, len(d.columns))
	keptIdx := make([]int, 0, len(d.columns))
	for i, c := range d.columns {
		if !dropped.Contains(c) {
			kept = append(kept, c)
			keptIdx = append(keptIdx, i)
		}
	}

	rows := make([][]float64, len(d.rows))
	for i, r := range d.rows {
		nr := make([]float64, len(keptIdx))
		for j, col := range keptIdx {
			nr[j] = r[col]
		}
		rows[i] = nr
	}

	idx := make(map[string]int, len(kept))
	for i, c := range kept {
		idx[c] = i
	}
	return &Dataset{
		ids:     d.ids,
		labels:  d.labels,
		columns: kept,
		colIdx:  idx,
		rows:    rows,
	}, nil
}

// Select derives a row-subset view keeping the given row indexes in order.
func (d *Dataset) Select(rowIdx []int) *Dataset {
	ids := make([]string, len(rowIdx))
	labels := make([]float64, len(rowIdx))
	rows := make([][]float64, len(rowIdx))
	for i, r := range rowIdx {
		ids[i] = d.ids[r]
		labels[i] = d.labels[r]
		rows[i] = d.rows[r]
	}
	return &Dataset{
		ids:     ids,
		labels:  labels,
		columns: d.columns,
		colIdx:  d.colIdx,
		rows:    rows,
	}
}
