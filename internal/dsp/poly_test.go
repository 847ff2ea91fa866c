package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyfitExactQuadratic(t *testing.T) {
	// y = 2x^2 - 3x + 1
	x := make([]float64, 20)
	y := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
		y[i] = 2*x[i]*x[i] - 3*x[i] + 1
	}

	coeffs, err := Polyfit(x, y, 2)
	require.NoError(t, err)
	require.Len(t, coeffs, 3)
	assert.InDelta(t, 2, coeffs[0], 1e-9)
	assert.InDelta(t, -3, coeffs[1], 1e-9)
	assert.InDelta(t, 1, coeffs[2], 1e-9)
}

func TestPolyfitLine(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	coeffs, err := Polyfit(x, y, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2, coeffs[0], 1e-9)
	assert.InDelta(t, 1, coeffs[1], 1e-9)
}

func TestPolyfitErrors(t *testing.T) {
	_, err := Polyfit([]float64{1, 2}, []float64{1}, 1)
	assert.Error(t, err)

	_, err = Polyfit([]float64{1, 2}, []float64{1, 2}, 2)
	assert.Error(t, err)
}

func TestPolyval(t *testing.T) {
	// 2x^2 - 3x + 1 at x = 2 is 3
	assert.InDelta(t, 3, Polyval([]float64{2, -3, 1}, 2), 1e-12)
	assert.InDelta(t, 1, Polyval([]float64{2, -3, 1}, 0), 1e-12)
	assert.InDelta(t, 0, Polyval(nil, 5), 1e-12)
}
