package plotter

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risecli/internal/dataprocessing"
)

func correctedRecording(n int) *dataprocessing.Recording {
	rec := &dataprocessing.Recording{
		Date:          make([]string, n),
		Time:          make([]string, n),
		SecondsZeroed: make([]float64, n),
		SecondsSynced: make([]float64, n),
		Axes: [3]dataprocessing.Axis{
			{Name: dataprocessing.ColumnAccX},
			{Name: dataprocessing.ColumnAccY},
			{Name: dataprocessing.ColumnAccZ},
		},
	}
	for i := 0; i < n; i++ {
		rec.SecondsZeroed[i] = float64(i) * 0.01
		v := math.Sin(float64(i) / 10)
		for a := range rec.Axes {
			rec.Axes[a].Raw = append(rec.Axes[a].Raw, v)
			rec.Axes[a].Corrected = append(rec.Axes[a].Corrected, v)
		}
	}
	return rec
}

func TestPlotCorrected(t *testing.T) {
	rec := correctedRecording(200)
	path := filepath.Join(t.TempDir(), "plots", "corrected.png")

	require.NoError(t, PlotCorrected(rec, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// PNG signature
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content[:4])
}

func TestPlotCorrectedRequiresCorrection(t *testing.T) {
	rec := correctedRecording(50)
	for a := range rec.Axes {
		rec.Axes[a].Corrected = nil
	}

	err := PlotCorrected(rec, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, dataprocessing.ErrNotCorrected)
}

func TestPlotCorrectedEmptyRecording(t *testing.T) {
	err := PlotCorrected(&dataprocessing.Recording{}, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, dataprocessing.ErrNotCorrected)
}
