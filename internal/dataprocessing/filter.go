package dataprocessing

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"risecli/internal/dsp"
)

// FilterParams describe a Butterworth band-pass filter. LowCut and HighCut
// are in Hz; the defaults mirror the usual monitoring setup.
type FilterParams struct {
	LowCut  float64 `validate:"gt=0"`
	HighCut float64 `validate:"gtfield=LowCut"`
	Order   int     `validate:"min=1,max=12"`
}

// DefaultFilterOrder is the Butterworth order used when none is given.
const DefaultFilterOrder = 4

// BandPassFilter applies a zero-phase Butterworth band-pass filter to every
// accelerometer axis, storing the result in the axis Filtered series. The
// sampling frequency is estimated from the recording's zeroed time column.
// The row count is unchanged.
func BandPassFilter(rec *Recording, params FilterParams) error {
	if rec.Len() == 0 {
		return fmt.Errorf("band-pass filter: %w", ErrNoData)
	}
	if params.Order == 0 {
		params.Order = DefaultFilterOrder
	}
	if err := validator.New().Struct(params); err != nil {
		return fmt.Errorf("invalid filter parameters: %w", err)
	}

	fs, err := rec.SampleRate()
	if err != nil {
		return fmt.Errorf("band-pass filter: %w", err)
	}

	nyquist := fs / 2
	if params.HighCut >= nyquist {
		return fmt.Errorf("high cutoff %g Hz must be below the Nyquist frequency %g Hz", params.HighCut, nyquist)
	}

	b, a, err := dsp.BandPass(params.Order, params.LowCut/nyquist, params.HighCut/nyquist)
	if err != nil {
		return fmt.Errorf("band-pass design failed: %w", err)
	}

	for i := range rec.Axes {
		axis := &rec.Axes[i]
		filtered, err := dsp.FiltFilt(b, a, axis.Raw)
		if err != nil {
			return fmt.Errorf("filtering %s failed: %w", axis.Name, err)
		}
		axis.Filtered = filtered
	}

	slog.Debug("Band-pass filter applied",
		slog.Float64("low_cut_hz", params.LowCut),
		slog.Float64("high_cut_hz", params.HighCut),
		slog.Int("order", params.Order),
		slog.Float64("sample_rate_hz", fs))

	return nil
}
