package dsp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Polyfit fits a polynomial of the given degree to (x, y) by least squares
// and returns the coefficients in descending order of power.
func Polyfit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length, got %d and %d", len(x), len(y))
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("need more than %d samples for a degree %d fit, got %d", degree, degree, len(x))
	}

	// Vandermonde matrix, highest power first.
	v := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		p := 1.0
		for j := degree; j >= 0; j-- {
			v.Set(i, j, p)
			p *= xi
		}
	}

	var qr mat.QR
	qr.Factorize(v)

	rhs := mat.NewVecDense(len(y), y)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, rhs); err != nil {
		return nil, fmt.Errorf("least squares solve failed: %w", err)
	}

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
	}
	return coeffs, nil
}

// Polyval evaluates a polynomial with coefficients in descending order at x
// using Horner's method.
func Polyval(coeffs []float64, x float64) float64 {
	var y float64
	for _, c := range coeffs {
		y = y*x + c
	}
	return y
}
