package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// BandPass designs a digital Butterworth band-pass filter of the given order.
// low and high are the cutoff frequencies normalized by the Nyquist frequency,
// so both must lie in (0, 1) with low < high. The returned b (numerator) and
// a (denominator) slices each have length 2*order+1, with a[0] == 1.
func BandPass(order int, low, high float64) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("filter order must be at least 1, got %d", order)
	}
	if low <= 0 || high >= 1 || low >= high {
		return nil, nil, fmt.Errorf("normalized cutoffs must satisfy 0 < low < high < 1, got [%g, %g]", low, high)
	}

	// Analog Butterworth prototype: order poles on the unit circle in the
	// left half plane, no zeros, unit gain.
	poles := make([]complex128, order)
	for k := 1; k <= order; k++ {
		theta := math.Pi * float64(2*k+order-1) / float64(2*order)
		poles[k-1] = cmplx.Exp(complex(0, theta))
	}
	zeros := []complex128{}
	gain := 1.0

	// Pre-warp the cutoffs for the bilinear transform (internal fs = 2).
	const fs = 2.0
	warpedLow := 2 * fs * math.Tan(math.Pi*low/fs)
	warpedHigh := 2 * fs * math.Tan(math.Pi*high/fs)
	bw := warpedHigh - warpedLow
	wo := math.Sqrt(warpedLow * warpedHigh)

	zeros, poles, gain = lowPassToBandPass(zeros, poles, gain, wo, bw)
	zeros, poles, gain = bilinear(zeros, poles, gain, fs)

	b = polyFromRoots(zeros)
	for i := range b {
		b[i] *= gain
	}
	a = polyFromRoots(poles)
	return b, a, nil
}

// lowPassToBandPass transforms a low-pass prototype (cutoff 1 rad/s) to a
// band-pass filter with center frequency wo and bandwidth bw.
func lowPassToBandPass(zeros, poles []complex128, gain, wo, bw float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)

	transform := func(roots []complex128) []complex128 {
		out := make([]complex128, 0, 2*len(roots))
		for _, r := range roots {
			scaled := r * complex(bw/2, 0)
			shift := cmplx.Sqrt(scaled*scaled - complex(wo*wo, 0))
			out = append(out, scaled+shift, scaled-shift)
		}
		return out
	}

	bpZeros := transform(zeros)
	bpPoles := transform(poles)

	// The low-pass zeros at infinity move to the origin.
	for i := 0; i < degree; i++ {
		bpZeros = append(bpZeros, 0)
	}

	gain *= math.Pow(bw, float64(degree))
	return bpZeros, bpPoles, gain
}

// bilinear maps the analog filter to the digital domain via the bilinear
// transform s -> 2*fs*(z-1)/(z+1).
func bilinear(zeros, poles []complex128, gain, fs float64) ([]complex128, []complex128, float64) {
	degree := len(poles) - len(zeros)
	fs2 := complex(2*fs, 0)

	mapRoots := func(roots []complex128) []complex128 {
		out := make([]complex128, len(roots))
		for i, r := range roots {
			out[i] = (fs2 + r) / (fs2 - r)
		}
		return out
	}

	numer := complex(1, 0)
	for _, z := range zeros {
		numer *= fs2 - z
	}
	denom := complex(1, 0)
	for _, p := range poles {
		denom *= fs2 - p
	}

	dZeros := mapRoots(zeros)
	dPoles := mapRoots(poles)

	// Zeros at infinity map to z = -1.
	for i := 0; i < degree; i++ {
		dZeros = append(dZeros, -1)
	}

	gain *= real(numer / denom)
	return dZeros, dPoles, gain
}

// polyFromRoots expands a monic polynomial from its roots, returning real
// coefficients in descending order. Complex roots are assumed to occur in
// conjugate pairs so the imaginary parts cancel.
func polyFromRoots(roots []complex128) []float64 {
	coeffs := make([]complex128, 1, len(roots)+1)
	coeffs[0] = 1
	for _, r := range roots {
		coeffs = append(coeffs, 0)
		for i := len(coeffs) - 1; i > 0; i-- {
			coeffs[i] -= r * coeffs[i-1]
		}
	}

	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}
