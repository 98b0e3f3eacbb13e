package util

import "math"

// Gradient estimates dy/dx on the grid x. Central differences inside,
// one-sided at both ends.
func Gradient(y, x []float64) []float64 {
	n := len(y)
	out := make([]float64, n)
	if n < 2 || len(x) != n {
		return out
	}

	out[0] = (y[1] - y[0]) / (x[1] - x[0])
	for i := 1; i < n-1; i++ {
		out[i] = (y[i+1] - y[i-1]) / (x[i+1] - x[i-1])
	}
	out[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	return out
}

// CumTrapz accumulates the trapezoid integral of y over a uniform step dx,
// starting from 0.
func CumTrapz(y []float64, dx float64) []float64 {
	n := len(y)
	if n == 0 {
		return []float64{}
	}

	result := make([]float64, n)
	result[0] = 0 // initial=0
	for i := 1; i < n; i++ {
		result[i] = result[i-1] + (y[i-1]+y[i])*dx/2.0
	}

	return result
}

func AllFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
