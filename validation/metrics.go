package validation

// Accuracy is the fraction of matching labels. Slices must be equal length.
func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// ConfusionMatrix counts binary outcomes with malignant (+1) as positive.
type ConfusionMatrix struct {
	TP int
	FP int
	TN int
	FN int
}

func Confusion(yTrue, yPred []float64) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := range yTrue {
		switch {
		case yTrue[i] > 0 && yPred[i] > 0:
			cm.TP++
		case yTrue[i] > 0 && yPred[i] <= 0:
			cm.FN++
		case yTrue[i] <= 0 && yPred[i] > 0:
			cm.FP++
		default:
			cm.TN++
		}
	}
	return cm
}

func (c ConfusionMatrix) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

func (c ConfusionMatrix) Accuracy() float64 {
	n := c.Total()
	if n == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(n)
}

func (c ConfusionMatrix) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

func (c ConfusionMatrix) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

func (c ConfusionMatrix) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
