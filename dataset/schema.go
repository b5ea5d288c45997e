package dataset

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"wdbc-analysis/utils"
	"wdbc-analysis/wdbc_config"
)

// FamilyColumns lists the expected column names of one feature family.
func FamilyColumns(family string) []string {
	out := make([]string, 0, len(wdbc_config.VariantSuffixes))
	for _, s := range wdbc_config.VariantSuffixes {
		out = append(out, family+s)
	}
	return out
}

// ValidateSchema checks that every family carries all three measurement
// variants. Derived columns beyond the canonical thirty are allowed.
func (d *Dataset) ValidateSchema() error {
	for _, family := range wdbc_config.FeatureFamilies {
		for _, want := range FamilyColumns(family) {
			if !slices.Contains(d.columns, want) {
				return fmt.Errorf("column %q: %w", want, utils.ErrMissingColumn)
			}
		}
	}
	return nil
}

// FamilyOf resolves the family a column belongs to, longest prefix first so
// that "concave points_mean" does not land in "concavity".
func FamilyOf(column string) (string, bool) {
	best := ""
	for _, family := range wdbc_config.FeatureFamilies {
		if strings.HasPrefix(column, family) && len(family) > len(best) {
			best = family
		}
	}
	return best, best != ""
}
