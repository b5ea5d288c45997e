package classifier

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"wdbc-analysis/utils"
	"wdbc-analysis/wdbc_config"
)

// LinearSVM is a linear-boundary soft-margin classifier trained with the
// Pegasos subgradient method on hinge loss. Cost plays the usual C role:
// larger values penalize margin violations harder. Training is deterministic
// for a fixed Seed; the epoch shuffle is the only randomness.
//
// Columns are standardized internally with statistics from the training data.
type LinearSVM struct {
	Cost   float64
	Epochs int
	Seed   int64

	weights []float64
	bias    float64
	mean    []float64
	scale   []float64
}

func (m *LinearSVM) Fit(X [][]float64, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}
	if m.Cost <= 0 {
		return fmt.Errorf("cost %v: %w", m.Cost, utils.ErrBadParam)
	}
	epochs := m.Epochs
	if epochs == 0 {
		epochs = wdbc_config.DefaultEpochs
	}

	n := len(X)
	p := len(X[0])

	// column statistics on the training partition only
	m.mean = make([]float64, p)
	m.scale = make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		mu, sigma := stat.MeanStdDev(col, nil)
		if sigma == 0 {
			sigma = 1 // constant column carries no signal, leave it centered
		}
		m.mean[j] = mu
		m.scale[j] = sigma
	}

	scaled := make([][]float64, n)
	for i := range X {
		row := make([]float64, p)
		for j := range row {
			row[j] = (X[i][j] - m.mean[j]) / m.scale[j]
		}
		scaled[i] = row
	}

	lambda := 1.0 / (m.Cost * float64(n))
	w := make([]float64, p)
	b := 0.0
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(m.Seed))
	t := 1
	for epoch := 0; epoch < epochs; epoch++ {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, i := range order {
			eta := 1.0 / (lambda * float64(t))
			t++
			margin := y[i] * (floats.Dot(w, scaled[i]) + b)
			floats.Scale(1-eta*lambda, w)
			if margin < 1 {
				floats.AddScaled(w, eta*y[i], scaled[i])
				b += eta * y[i]
			}
		}
	}

	m.weights = w
	m.bias = b
	return nil
}

func (m *LinearSVM) Predict(x []float64) (float64, error) {
	if m.weights == nil {
		return 0, utils.ErrNotFitted
	}
	if len(x) != len(m.weights) {
		return 0, fmt.Errorf("got %d features, want %d: %w", len(x), len(m.weights), utils.ErrDimMismatch)
	}
	s := m.bias
	for j, v := range x {
		s += m.weights[j] * (v - m.mean[j]) / m.scale[j]
	}
	if s >= 0 {
		return 1, nil
	}
	return -1, nil
}

// DecisionValue exposes the signed distance-like score, used by callers that
// want a ranking rather than a hard label.
func (m *LinearSVM) DecisionValue(x []float64) (float64, error) {
	if m.weights == nil {
		return 0, utils.ErrNotFitted
	}
	if len(x) != len(m.weights) {
		return 0, fmt.Errorf("got %d features, want %d: %w", len(x), len(m.weights), utils.ErrDimMismatch)
	}
	s := m.bias
	for j, v := range x {
		s += m.weights[j] * (v - m.mean[j]) / m.scale[j]
	}
	return s, nil
}
