package validation

import (
	"math"
	"testing"
)

func TestConfusionCounts(t *testing.T) {
	yTrue := []float64{1, 1, 1, -1, -1, -1}
	yPred := []float64{1, 1, -1, -1, 1, -1}
	cm := Confusion(yTrue, yPred)
	if cm.TP != 2 || cm.FN != 1 || cm.FP != 1 || cm.TN != 2 {
		t.Fatalf("cm = %+v", cm)
	}
	if got := cm.Accuracy(); got != 4.0/6.0 {
		t.Errorf("accuracy = %v", got)
	}
	if got := cm.Precision(); got != 2.0/3.0 {
		t.Errorf("precision = %v", got)
	}
	if got := cm.Recall(); got != 2.0/3.0 {
		t.Errorf("recall = %v", got)
	}
	if got := cm.F1(); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("f1 = %v", got)
	}
}

func TestAccuracyEmptyInput(t *testing.T) {
	if got := Accuracy(nil, nil); got != 0 {
		t.Errorf("accuracy of empty = %v", got)
	}
}

func TestConfusionAllCorrect(t *testing.T) {
	yTrue := []float64{1, -1}
	cm := Confusion(yTrue, yTrue)
	if cm.Accuracy() != 1 || cm.F1() != 1 {
		t.Errorf("cm = %+v", cm)
	}
}
