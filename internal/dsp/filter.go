package dsp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Lfilter applies an IIR/FIR filter to x using the direct form II transposed
// structure. zi holds the initial delay-line state and may be nil; when
// non-nil it must have length max(len(a), len(b)) - 1.
func Lfilter(b, a, x, zi []float64) ([]float64, []float64, error) {
	if len(a) == 0 || a[0] == 0 {
		return nil, nil, fmt.Errorf("denominator must be non-empty with a[0] != 0")
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	// Normalize and zero-pad both coefficient sets to a common length.
	bn := make([]float64, n)
	an := make([]float64, n)
	for i := range b {
		bn[i] = b[i] / a[0]
	}
	for i := range a {
		an[i] = a[i] / a[0]
	}

	state := make([]float64, n-1)
	if zi != nil {
		if len(zi) != n-1 {
			return nil, nil, fmt.Errorf("initial state must have length %d, got %d", n-1, len(zi))
		}
		copy(state, zi)
	}

	y := make([]float64, len(x))
	if n == 1 {
		for i, xn := range x {
			y[i] = bn[0] * xn
		}
		return y, state, nil
	}

	for i, xn := range x {
		yn := bn[0]*xn + state[0]
		for j := 0; j < n-2; j++ {
			state[j] = bn[j+1]*xn + state[j+1] - an[j+1]*yn
		}
		state[n-2] = bn[n-1]*xn - an[n-1]*yn
		y[i] = yn
	}
	return y, state, nil
}

// FiltFilt applies the filter forward and backward, giving zero phase
// distortion. The input is extended on both ends with an odd-symmetric
// reflection of length 3*max(len(a), len(b)) and each pass starts from the
// filter's steady state scaled to the first sample, which suppresses edge
// transients. The output has the same length as x.
func FiltFilt(b, a, x []float64) ([]float64, error) {
	ntaps := len(a)
	if len(b) > ntaps {
		ntaps = len(b)
	}
	padlen := 3 * ntaps
	if len(x) <= padlen {
		return nil, fmt.Errorf("input length must exceed padding length %d, got %d", padlen, len(x))
	}

	zi, err := lfilterZi(b, a)
	if err != nil {
		return nil, err
	}

	ext := oddExtension(x, padlen)

	scaled := make([]float64, len(zi))
	for i := range zi {
		scaled[i] = zi[i] * ext[0]
	}
	forward, _, err := Lfilter(b, a, ext, scaled)
	if err != nil {
		return nil, err
	}

	reverse(forward)
	for i := range zi {
		scaled[i] = zi[i] * forward[0]
	}
	backward, _, err := Lfilter(b, a, forward, scaled)
	if err != nil {
		return nil, err
	}
	reverse(backward)

	return backward[padlen : len(backward)-padlen], nil
}

// lfilterZi computes the steady-state delay-line values for a unit step
// input, solving (I - A) zi = B for the companion-form state matrix.
func lfilterZi(b, a []float64) ([]float64, error) {
	if len(a) == 0 || a[0] == 0 {
		return nil, fmt.Errorf("denominator must be non-empty with a[0] != 0")
	}

	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	bn := make([]float64, n)
	an := make([]float64, n)
	for i := range b {
		bn[i] = b[i] / a[0]
	}
	for i := range a {
		an[i] = a[i] / a[0]
	}

	m := n - 1
	if m == 0 {
		return []float64{}, nil
	}

	// I - companion(a)^T
	sys := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			v := 0.0
			if i == j {
				v = 1.0
			}
			// companion^T: first column is -a[1:], superdiagonal is ones
			if j == 0 {
				v -= -an[i+1]
			} else if i == j-1 {
				v -= 1.0
			}
			sys.Set(i, j, v)
		}
	}

	rhs := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		rhs.SetVec(i, bn[i+1]-an[i+1]*bn[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(sys, rhs); err != nil {
		return nil, fmt.Errorf("failed to solve for steady state: %w", err)
	}

	out := make([]float64, m)
	for i := 0; i < m; i++ {
		out[i] = zi.AtVec(i)
	}
	return out, nil
}

// oddExtension pads x on both ends with an odd-symmetric reflection about
// the end points.
func oddExtension(x []float64, padlen int) []float64 {
	n := len(x)
	ext := make([]float64, 0, n+2*padlen)
	for i := padlen; i >= 1; i-- {
		ext = append(ext, 2*x[0]-x[i])
	}
	ext = append(ext, x...)
	for i := n - 2; i >= n-1-padlen; i-- {
		ext = append(ext, 2*x[n-1]-x[i])
	}
	return ext
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
