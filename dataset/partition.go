package dataset

import (
	"fmt"
	"math/rand"
	"sort"

	"wdbc-analysis/utils"
)

// Partition is a fixed train/eval split. Sides are disjoint, their union is
// the full dataset, and both stay immutable for the whole analysis.
type Partition struct {
	Train *Dataset
	Eval  *Dataset
}

// Split assigns observations to the eval side with probability evalRatio,
// stratified by label so both sides keep the class mix. Assignment is
// deterministic for a given seed.
func Split(d *Dataset, evalRatio float64, seed int64) (Partition, error) {
	if evalRatio <= 0 || evalRatio >= 1 {
		return Partition{}, fmt.Errorf("ratio %v: %w", evalRatio, utils.ErrBadRatio)
	}
	if d.ClassCount() < 2 {
		return Partition{}, utils.ErrSingleClass
	}

	byClass := map[bool][]int{}
	for i, y := range d.labels {
		byClass[y > 0] = append(byClass[y > 0], i)
	}

	rng := rand.New(rand.NewSource(seed))
	var trainIdx, evalIdx []int
	// 先正类后负类,保证两次运行切分一致
	for _, positive := range []bool{true, false} {
		idx := byClass[positive]
		shuffled := make([]int, len(idx))
		copy(shuffled, idx)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		n := int(float64(len(shuffled)) * evalRatio)
		evalIdx = append(evalIdx, shuffled[:n]...)
		trainIdx = append(trainIdx, shuffled[n:]...)
	}
	if len(trainIdx) == 0 || len(evalIdx) == 0 {
		return Partition{}, fmt.Errorf("train=%d eval=%d: %w", len(trainIdx), len(evalIdx), utils.ErrEmptySide)
	}
	sort.Ints(trainIdx)
	sort.Ints(evalIdx)

	p := Partition{Train: d.Select(trainIdx), Eval: d.Select(evalIdx)}
	if p.Train.ClassCount() < 2 {
		return Partition{}, utils.ErrSingleClass
	}
	return p, nil
}
