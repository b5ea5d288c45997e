package classifier

import (
	"fmt"
	"sort"

	"github.com/awalterschulze/gographviz"

	"wdbc-analysis/utils"
	"wdbc-analysis/wdbc_config"
)

// TreeConfig bounds CART growth.
type TreeConfig struct {
	MaxDepth       int
	MinSamplesLeaf int
}

// DecisionTree is a binary CART classifier with gini splits on numeric
// thresholds. Splits are chosen deterministically: features in column order,
// first best gain wins ties.
type DecisionTree struct {
	Config TreeConfig

	root      *treeNode
	nFeatures int
}

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	samples   int
	left      *treeNode
	right     *treeNode
}

func (t *DecisionTree) Fit(X [][]float64, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}
	if t.Config.MaxDepth == 0 {
		t.Config.MaxDepth = wdbc_config.DefaultMaxDepth
	}
	if t.Config.MinSamplesLeaf == 0 {
		t.Config.MinSamplesLeaf = wdbc_config.DefaultMinSamplesLeaf
	}
	t.nFeatures = len(X[0])
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	t.root = t.grow(X, y, idx, 0)
	return nil
}

func (t *DecisionTree) grow(X [][]float64, y []float64, idx []int, depth int) *treeNode {
	pos := 0
	for _, i := range idx {
		if y[i] > 0 {
			pos++
		}
	}
	node := &treeNode{samples: len(idx), value: majority(pos, len(idx))}
	if depth >= t.Config.MaxDepth || len(idx) < 2*t.Config.MinSamplesLeaf || pos == 0 || pos == len(idx) {
		node.leaf = true
		return node
	}

	feature, threshold, gain := t.bestSplit(X, y, idx)
	if gain <= 0 {
		node.leaf = true
		return node
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < t.Config.MinSamplesLeaf || len(right) < t.Config.MinSamplesLeaf {
		node.leaf = true
		return node
	}

	node.feature = feature
	node.threshold = threshold
	node.left = t.grow(X, y, left, depth+1)
	node.right = t.grow(X, y, right, depth+1)
	return node
}

func majority(pos, n int) float64 {
	// 平手时取恶性,宁可误报
	if 2*pos >= n {
		return 1
	}
	return -1
}

func gini(pos, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(pos) / float64(n)
	return 2 * p * (1 - p)
}

// bestSplit scans every feature and every midpoint between consecutive
// distinct values, maximizing gini impurity decrease.
func (t *DecisionTree) bestSplit(X [][]float64, y []float64, idx []int) (int, float64, float64) {
	n := len(idx)
	posTotal := 0
	for _, i := range idx {
		if y[i] > 0 {
			posTotal++
		}
	}
	parent := gini(posTotal, n)

	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0
	type pair struct {
		v   float64
		pos bool
	}
	pairs := make([]pair, n)
	for f := 0; f < t.nFeatures; f++ {
		for k, i := range idx {
			pairs[k] = pair{X[i][f], y[i] > 0}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].v < pairs[b].v })

		leftN, leftPos := 0, 0
		for k := 0; k < n-1; k++ {
			leftN++
			if pairs[k].pos {
				leftPos++
			}
			if pairs[k].v == pairs[k+1].v {
				continue
			}
			rightN := n - leftN
			rightPos := posTotal - leftPos
			w := float64(leftN) / float64(n)
			child := w*gini(leftPos, leftN) + (1-w)*gini(rightPos, rightN)
			gain := parent - child
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = (pairs[k].v + pairs[k+1].v) / 2
			}
		}
	}
	return bestFeature, bestThreshold, bestGain
}

func (t *DecisionTree) Predict(x []float64) (float64, error) {
	if t.root == nil {
		return 0, utils.ErrNotFitted
	}
	if len(x) != t.nFeatures {
		return 0, fmt.Errorf("got %d features, want %d: %w", len(x), t.nFeatures, utils.ErrDimMismatch)
	}
	node := t.root
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value, nil
}

// Depth reports the grown depth, mostly for diagnostics.
func (t *DecisionTree) Depth() int {
	var depth func(n *treeNode) int
	depth = func(n *treeNode) int {
		if n == nil || n.leaf {
			return 0
		}
		l, r := depth(n.left), depth(n.right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return depth(t.root)
}

// ExportDOT renders the fitted tree as a graphviz dot document with feature
// names on the internal nodes.
func (t *DecisionTree) ExportDOT(features []string) (string, error) {
	if t.root == nil {
		return "", utils.ErrNotFitted
	}
	if len(features) != t.nFeatures {
		return "", fmt.Errorf("got %d feature names, want %d: %w", len(features), t.nFeatures, utils.ErrDimMismatch)
	}
	g := gographviz.NewGraph()
	if err := g.SetName("tree"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	counter := 0
	var walk func(n *treeNode) (string, error)
	walk = func(n *treeNode) (string, error) {
		name := fmt.Sprintf("n%d", counter)
		counter++
		var label string
		if n.leaf {
			cls := wdbc_config.LabelBenign
			if n.value > 0 {
				cls = wdbc_config.LabelMalignant
			}
			label = fmt.Sprintf("\"%s (%d)\"", cls, n.samples)
		} else {
			label = fmt.Sprintf("\"%s <= %.4g\"", features[n.feature], n.threshold)
		}
		if err := g.AddNode("tree", name, map[string]string{"label": label, "shape": "box"}); err != nil {
			return "", err
		}
		if !n.leaf {
			leftName, err := walk(n.left)
			if err != nil {
				return "", err
			}
			rightName, err := walk(n.right)
			if err != nil {
				return "", err
			}
			if err := g.AddEdge(name, leftName, true, map[string]string{"label": "\"yes\""}); err != nil {
				return "", err
			}
			if err := g.AddEdge(name, rightName, true, map[string]string{"label": "\"no\""}); err != nil {
				return "", err
			}
		}
		return name, nil
	}
	if _, err := walk(t.root); err != nil {
		return "", err
	}
	return g.String(), nil
}
