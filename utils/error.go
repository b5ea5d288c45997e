package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// dataset error code: [500100, 500200)
	ErrOpenCsv           = &ServiceError{500100, "open csv error"}
	ErrReadCsv           = &ServiceError{500101, "read csv error"}
	ErrEmptyDataset      = &ServiceError{500102, "dataset has no observations"}
	ErrMissingColumn     = &ServiceError{500103, "required column not found"}
	ErrDuplicateColumn   = &ServiceError{500104, "duplicate column name"}
	ErrBadLabel          = &ServiceError{500105, "label value out of domain"}
	ErrBadNumeric        = &ServiceError{500106, "measurement is not numeric"}
	ErrNoMatchingColumns = &ServiceError{500107, "no matching columns for family"}
	ErrRowShape          = &ServiceError{500108, "row length does not match columns"}
	ErrColumnExists      = &ServiceError{500109, "derived column already exists"}
	ErrBadExpression     = &ServiceError{500110, "derived column expression error"}
	ErrSingleClass       = &ServiceError{500111, "fewer than two label classes present"}
	ErrBadRatio          = &ServiceError{500112, "eval ratio out of (0,1)"}
	ErrEmptySide         = &ServiceError{500113, "partition side would be empty"}

	// classifier error code: [500200, 500300)
	ErrNoPredictors = &ServiceError{500200, "no predictor columns left"}
	ErrNotFitted    = &ServiceError{500201, "model is not fitted"}
	ErrDimMismatch  = &ServiceError{500202, "sample width does not match training data"}
	ErrBadParam     = &ServiceError{500203, "invalid hyperparameter"}

	// validation error code: [500300, 500400)
	ErrBadFoldCount  = &ServiceError{500300, "fold count must be at least 2"}
	ErrClassTooSmall = &ServiceError{500301, "a class has fewer samples than folds"}
	ErrEmptyGrid     = &ServiceError{500302, "parameter grid is empty"}

	// ablation error code: [500400, 500500)
	ErrNoFamilies = &ServiceError{500400, "no feature families to sweep"}
)
