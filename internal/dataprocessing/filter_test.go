package dataprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sinusoidRecording samples the given frequencies at 100 Hz for n samples,
// summed per axis.
func sinusoidRecording(n int, freqs ...float64) *Recording {
	const fs = 100.0
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / fs
		for _, f := range freqs {
			samples[i] += math.Sin(2 * math.Pi * f * t)
		}
	}
	rec := makeRecording(samples)
	for i := range rec.SecondsZeroed {
		rec.SecondsZeroed[i] = float64(i) / fs
	}
	return rec
}

func TestBandPassFilterAddsFilteredSeries(t *testing.T) {
	rec := sinusoidRecording(500, 10)

	err := BandPassFilter(rec, FilterParams{LowCut: 5, HighCut: 20, Order: 4})
	require.NoError(t, err)

	assert.Equal(t, 500, rec.Len(), "row count must not change")
	for _, axis := range rec.Axes {
		assert.Len(t, axis.Filtered, 500)
	}
	assert.True(t, rec.IsFiltered())
}

func TestBandPassFilterPassesInBand(t *testing.T) {
	// 10 Hz tone inside a 5..20 Hz band survives nearly unchanged.
	rec := sinusoidRecording(500, 10)
	want := append([]float64(nil), rec.Axes[0].Raw...)

	require.NoError(t, BandPassFilter(rec, FilterParams{LowCut: 5, HighCut: 20, Order: 4}))

	for i := 100; i < 400; i++ {
		assert.InDelta(t, want[i], rec.Axes[0].Filtered[i], 0.01, "sample %d", i)
	}
}

func TestBandPassFilterRejectsOutOfBand(t *testing.T) {
	// 10 Hz in-band plus 1 Hz and 40 Hz out-of-band content.
	rec := sinusoidRecording(1000, 10, 1, 40)

	require.NoError(t, BandPassFilter(rec, FilterParams{LowCut: 5, HighCut: 20, Order: 4}))

	const fs = 100.0
	for i := 200; i < 800; i++ {
		clean := math.Sin(2 * math.Pi * 10 * float64(i) / fs)
		assert.InDelta(t, clean, rec.Axes[0].Filtered[i], 0.05, "sample %d", i)
	}
}

func TestBandPassFilterDefaultOrder(t *testing.T) {
	rec := sinusoidRecording(500, 10)
	require.NoError(t, BandPassFilter(rec, FilterParams{LowCut: 5, HighCut: 20}))
	assert.True(t, rec.IsFiltered())
}

func TestBandPassFilterInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params FilterParams
	}{
		{"zero low cut", FilterParams{LowCut: 0, HighCut: 20, Order: 4}},
		{"high below low", FilterParams{LowCut: 20, HighCut: 5, Order: 4}},
		{"order too large", FilterParams{LowCut: 5, HighCut: 20, Order: 50}},
		{"high above nyquist", FilterParams{LowCut: 5, HighCut: 60, Order: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sinusoidRecording(500, 10)
			assert.Error(t, BandPassFilter(rec, tt.params))
		})
	}
}

func TestBandPassFilterNoData(t *testing.T) {
	assert.ErrorIs(t, BandPassFilter(&Recording{}, FilterParams{LowCut: 5, HighCut: 20}), ErrNoData)
}

func TestSampleRate(t *testing.T) {
	rec := sinusoidRecording(100, 10)
	fs, err := rec.SampleRate()
	require.NoError(t, err)
	assert.InDelta(t, 100, fs, 1e-6)
}

func TestSampleRateErrors(t *testing.T) {
	rec := makeRecording([]float64{1})
	_, err := rec.SampleRate()
	assert.ErrorIs(t, err, ErrNoData)

	rec = makeRecording([]float64{1, 2, 3})
	rec.SecondsZeroed = []float64{3, 2, 1}
	_, err = rec.SampleRate()
	assert.Error(t, err)
}

func TestIsCorrectedAndIsFiltered(t *testing.T) {
	rec := sinusoidRecording(100, 10)
	assert.False(t, rec.IsCorrected())
	assert.False(t, rec.IsFiltered())

	require.NoError(t, BaselineCorrect(rec, MethodMean))
	assert.True(t, rec.IsCorrected())
	assert.False(t, rec.IsFiltered())
}
