package dataprocessing

import (
	"fmt"
	"log/slog"

	"risecli/internal/dsp"
)

// Baseline correction methods.
const (
	MethodMean       = "mean"
	MethodPolynomial = "polynomial"
)

// polynomialDegree is the detrending polynomial degree used by the
// "polynomial" method.
const polynomialDegree = 2

// BaselineCorrect removes the baseline from every accelerometer axis and
// stores the result in the axis Corrected series. The "mean" method subtracts
// the per-axis mean; the "polynomial" method fits a 2nd-degree polynomial
// over the sample index and subtracts the trend.
func BaselineCorrect(rec *Recording, method string) error {
	if rec.Len() == 0 {
		return fmt.Errorf("baseline correction: %w", ErrNoData)
	}

	switch method {
	case MethodMean, MethodPolynomial:
	default:
		return fmt.Errorf("%w: %q (choose %q or %q)", ErrUnsupportedMethod, method, MethodMean, MethodPolynomial)
	}

	for a := range rec.Axes {
		axis := &rec.Axes[a]
		corrected := make([]float64, len(axis.Raw))

		switch method {
		case MethodMean:
			mean := 0.0
			for _, v := range axis.Raw {
				mean += v
			}
			mean /= float64(len(axis.Raw))
			for i, v := range axis.Raw {
				corrected[i] = v - mean
			}

		case MethodPolynomial:
			index := make([]float64, len(axis.Raw))
			for i := range index {
				index[i] = float64(i)
			}
			coeffs, err := dsp.Polyfit(index, axis.Raw, polynomialDegree)
			if err != nil {
				return fmt.Errorf("polynomial fit for %s failed: %w", axis.Name, err)
			}
			for i, v := range axis.Raw {
				corrected[i] = v - dsp.Polyval(coeffs, index[i])
			}
		}

		axis.Corrected = corrected
	}

	slog.Debug("Baseline correction applied",
		slog.String("method", method),
		slog.Int("samples", rec.Len()))

	return nil
}
