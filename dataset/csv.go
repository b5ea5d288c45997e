package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	mapset "github.com/deckarep/golang-set"

	"wdbc-analysis/share/logger"
	"wdbc-analysis/utils"
	"wdbc-analysis/wdbc_config"
)

// Load reads the diagnostic CSV into a Dataset. The file must carry an id
// column, a diagnosis column with values M/B, and numeric measurement columns.
// The id column is kept aside and never becomes part of the feature matrix.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Errorf("open csv %s failed: %v", path, err)
		return nil, fmt.Errorf("%s: %w", path, utils.ErrOpenCsv)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		logger.Errorf("read csv %s failed: %v", path, err)
		return nil, fmt.Errorf("%s: %w", path, utils.ErrReadCsv)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %w", path, utils.ErrEmptyDataset)
	}

	header := records[0]
	seen := mapset.NewSet()
	idCol, labelCol := -1, -1
	featureCols := make([]int, 0, len(header))
	featureNames := make([]string, 0, len(header))
	for i, name := range header {
		if !seen.Add(name) {
			return nil, fmt.Errorf("column %q: %w", name, utils.ErrDuplicateColumn)
		}
		switch name {
		case wdbc_config.IDColumn:
			idCol = i
		case wdbc_config.LabelColumn:
			labelCol = i
		default:
			featureCols = append(featureCols, i)
			featureNames = append(featureNames, name)
		}
	}
	if idCol == -1 {
		return nil, fmt.Errorf("column %q: %w", wdbc_config.IDColumn, utils.ErrMissingColumn)
	}
	if labelCol == -1 {
		return nil, fmt.Errorf("column %q: %w", wdbc_config.LabelColumn, utils.ErrMissingColumn)
	}

	body := records[1:]
	ids := make([]string, len(body))
	labels := make([]float64, len(body))
	rows := make([][]float64, len(body))
	for i, rec := range body {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d has %d fields, want %d: %w", i+2, len(rec), len(header), utils.ErrRowShape)
		}
		ids[i] = rec[idCol]
		switch rec[labelCol] {
		case wdbc_config.LabelMalignant:
			labels[i] = 1
		case wdbc_config.LabelBenign:
			labels[i] = -1
		default:
			return nil, fmt.Errorf("line %d label %q: %w", i+2, rec[labelCol], utils.ErrBadLabel)
		}
		row := make([]float64, len(featureCols))
		for j, col := range featureCols {
			v, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %q value %q: %w", i+2, header[col], rec[col], utils.ErrBadNumeric)
			}
			row[j] = v
		}
		rows[i] = row
	}

	d, err := New(featureNames, rows, ids, labels)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %s: %d observations, %d measurement columns", path, d.NumRows(), d.NumColumns())
	return d, nil
}
