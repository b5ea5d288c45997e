package validation

import (
	"fmt"
	"math/rand"
	"sort"

	"wdbc-analysis/utils"
)

// StratifiedKFold partitions row indexes into k folds keeping the class mix
// of the binary label vector. Fold assignment is deterministic for a given
// seed: classes are processed positive first, shuffled, dealt round-robin.
// The returned slices are the held-out indexes of each fold, sorted.
func StratifiedKFold(labels []float64, k int, seed int64) ([][]int, error) {
	if k < 2 {
		return nil, fmt.Errorf("k=%d: %w", k, utils.ErrBadFoldCount)
	}
	var pos, neg []int
	for i, y := range labels {
		if y > 0 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		return nil, utils.ErrSingleClass
	}
	if len(pos) < k || len(neg) < k {
		return nil, fmt.Errorf("pos=%d neg=%d k=%d: %w", len(pos), len(neg), k, utils.ErrClassTooSmall)
	}

	rng := rand.New(rand.NewSource(seed))
	folds := make([][]int, k)
	for _, class := range [][]int{pos, neg} {
		shuffled := make([]int, len(class))
		copy(shuffled, class)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		for i, idx := range shuffled {
			folds[i%k] = append(folds[i%k], idx)
		}
	}
	for _, f := range folds {
		sort.Ints(f)
	}
	return folds, nil
}
