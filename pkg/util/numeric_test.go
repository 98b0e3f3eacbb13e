package util

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate"
)

func TestGradientLinear(t *testing.T) {
	x := []float64{0, 0.5, 1.0, 1.5, 2.0}
	y := make([]float64, len(x))
	for i, xv := range x {
		y[i] = 3*xv - 1
	}

	grad := Gradient(y, x)
	for i, g := range grad {
		if math.Abs(g-3) > 1e-12 {
			t.Errorf("grad[%d] = %v, expected 3", i, g)
		}
	}
}

func TestGradientQuadratic(t *testing.T) {
	// y = x^2 on x = 0..3: one-sided ends give 1 and 5, central
	// differences are exact for the interior (2x).
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}
	expected := []float64{1, 2, 4, 5}

	grad := Gradient(y, x)
	for i, want := range expected {
		if math.Abs(grad[i]-want) > 1e-12 {
			t.Errorf("grad[%d] = %v, expected %v", i, grad[i], want)
		}
	}
}

func TestGradientDegenerate(t *testing.T) {
	grad := Gradient([]float64{5}, []float64{0})
	if len(grad) != 1 || grad[0] != 0 {
		t.Errorf("single-point gradient = %v, expected [0]", grad)
	}
}

func TestCumTrapzConstant(t *testing.T) {
	y := []float64{2, 2, 2, 2}
	expected := []float64{0, 1, 2, 3}

	acc := CumTrapz(y, 0.5)
	for i, want := range expected {
		if math.Abs(acc[i]-want) > 1e-12 {
			t.Errorf("acc[%d] = %v, expected %v", i, acc[i], want)
		}
	}
}

func TestCumTrapzLinear(t *testing.T) {
	// Integral of y = x is x^2/2; the trapezoid rule is exact for it.
	y := []float64{0, 1, 2, 3}
	expected := []float64{0, 0.5, 2, 4.5}

	acc := CumTrapz(y, 1.0)
	for i, want := range expected {
		if math.Abs(acc[i]-want) > 1e-12 {
			t.Errorf("acc[%d] = %v, expected %v", i, acc[i], want)
		}
	}
}

func TestCumTrapzMatchesGonum(t *testing.T) {
	// Every prefix of the accumulation must agree with an independent
	// trapezoid integral over the same points.
	dx := 0.25
	y := []float64{0, 0.3, 1.1, 2.0, 1.2, 0.4}
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i) * dx
	}

	acc := CumTrapz(y, dx)
	for i := 1; i < len(y); i++ {
		want := integrate.Trapezoidal(x[:i+1], y[:i+1])
		if math.Abs(acc[i]-want) > 1e-12 {
			t.Errorf("acc[%d] = %v, expected %v", i, acc[i], want)
		}
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{0, -1.5, 1e300}) {
		t.Error("finite slice reported as not finite")
	}
	if AllFinite([]float64{0, math.NaN()}) {
		t.Error("NaN not detected")
	}
	if AllFinite([]float64{math.Inf(1)}) {
		t.Error("Inf not detected")
	}
	if !AllFinite(nil) {
		t.Error("empty slice should count as finite")
	}
}
