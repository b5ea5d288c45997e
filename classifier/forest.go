package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/yourbasic/bit"

	"wdbc-analysis/utils"
	"wdbc-analysis/wdbc_config"
)

// RandomForest bags deterministic CART trees over bootstrap samples with
// sqrt-feature subsampling. Seeded, so repeated fits agree bit for bit.
type RandomForest struct {
	Trees          int
	MaxDepth       int
	MinSamplesLeaf int
	Seed           int64

	trees   []*DecisionTree
	featIdx [][]int
	inBag   []*bit.Set
	oob     float64
	nInput  int
}

func (f *RandomForest) Fit(X [][]float64, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}
	if f.Trees == 0 {
		f.Trees = wdbc_config.DefaultTrees
	}
	if f.MaxDepth == 0 {
		f.MaxDepth = wdbc_config.DefaultMaxDepth
	}
	if f.MinSamplesLeaf == 0 {
		f.MinSamplesLeaf = wdbc_config.DefaultMinSamplesLeaf
	}

	n := len(X)
	p := len(X[0])
	f.nInput = p
	mtry := int(math.Sqrt(float64(p)))
	if mtry < 1 {
		mtry = 1
	}

	rng := rand.New(rand.NewSource(f.Seed))
	f.trees = make([]*DecisionTree, 0, f.Trees)
	f.featIdx = make([][]int, 0, f.Trees)
	f.inBag = make([]*bit.Set, 0, f.Trees)

	for t := 0; t < f.Trees; t++ {
		bag := bit.New()
		rowIdx := make([]int, n)
		for i := range rowIdx {
			r := rng.Intn(n)
			rowIdx[i] = r
			bag.Add(r)
		}

		feats := rng.Perm(p)[:mtry]

		subX := make([][]float64, n)
		subY := make([]float64, n)
		for i, r := range rowIdx {
			row := make([]float64, mtry)
			for j, c := range feats {
				row[j] = X[r][c]
			}
			subX[i] = row
			subY[i] = y[r]
		}

		tree := &DecisionTree{Config: TreeConfig{MaxDepth: f.MaxDepth, MinSamplesLeaf: f.MinSamplesLeaf}}
		if err := tree.Fit(subX, subY); err != nil {
			// 自助采样偶尔会抽出单类样本,跳过该树
			if errors.Is(err, utils.ErrSingleClass) {
				continue
			}
			return err
		}
		f.trees = append(f.trees, tree)
		f.featIdx = append(f.featIdx, feats)
		f.inBag = append(f.inBag, bag)
	}
	if len(f.trees) == 0 {
		return utils.ErrSingleClass
	}

	f.oob = f.oobAccuracy(X, y)
	return nil
}

// oobAccuracy votes each sample with the trees that never saw it.
func (f *RandomForest) oobAccuracy(X [][]float64, y []float64) float64 {
	correct, counted := 0, 0
	for i, row := range X {
		votes := 0.0
		voted := false
		for t, tree := range f.trees {
			if f.inBag[t].Contains(i) {
				continue
			}
			pred, err := tree.Predict(project(row, f.featIdx[t]))
			if err != nil {
				continue
			}
			votes += pred
			voted = true
		}
		if !voted {
			continue
		}
		counted++
		pred := 1.0
		if votes < 0 {
			pred = -1
		}
		if pred == y[i] {
			correct++
		}
	}
	if counted == 0 {
		return 0
	}
	return float64(correct) / float64(counted)
}

func project(row []float64, feats []int) []float64 {
	out := make([]float64, len(feats))
	for j, c := range feats {
		out[j] = row[c]
	}
	return out
}

func (f *RandomForest) Predict(x []float64) (float64, error) {
	if len(f.trees) == 0 {
		return 0, utils.ErrNotFitted
	}
	if len(x) != f.nInput {
		return 0, fmt.Errorf("got %d features, want %d: %w", len(x), f.nInput, utils.ErrDimMismatch)
	}
	votes := 0.0
	for t, tree := range f.trees {
		pred, err := tree.Predict(project(x, f.featIdx[t]))
		if err != nil {
			return 0, err
		}
		votes += pred
	}
	// 平手时取恶性
	if votes >= 0 {
		return 1, nil
	}
	return -1, nil
}

// OOBAccuracy reports the out-of-bag accuracy computed during Fit.
func (f *RandomForest) OOBAccuracy() float64 {
	return f.oob
}
