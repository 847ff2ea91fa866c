package dataprocessing

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline. Callers use errors.Is to branch.
var (
	// ErrNoData indicates an operation was invoked on an empty recording
	ErrNoData = errors.New("no data loaded")
	// ErrMissingColumn indicates the input file lacks a required column
	ErrMissingColumn = errors.New("missing required column")
	// ErrUnsupportedMethod indicates an unknown baseline correction method
	ErrUnsupportedMethod = errors.New("unsupported baseline correction method")
	// ErrNotCorrected indicates baseline correction has not been applied yet
	ErrNotCorrected = errors.New("no corrected data available")
)

// Column names of the tab-separated input format.
const (
	ColumnDate          = "Date"
	ColumnTime          = "Time"
	ColumnSecondsZeroed = "Seconds (zeroed)"
	ColumnSecondsSynced = "Seconds (synced)"
	ColumnAccX          = "Acc x"
	ColumnAccY          = "Acc y"
	ColumnAccZ          = "Acc z"
)

// RequiredColumns is the expected column set of a recording file.
var RequiredColumns = []string{
	ColumnDate,
	ColumnTime,
	ColumnSecondsZeroed,
	ColumnSecondsSynced,
	ColumnAccX,
	ColumnAccY,
	ColumnAccZ,
}

// Axis holds one accelerometer axis: the raw samples plus the series the
// pipeline derives from them.
type Axis struct {
	Name      string
	Raw       []float64
	Corrected []float64
	Filtered  []float64
}

// Recording is a columnar accelerometer time series loaded from a
// tab-separated file. Transformations mutate it in place.
type Recording struct {
	Date          []string
	Time          []string
	SecondsZeroed []float64
	SecondsSynced []float64
	Axes          [3]Axis
}

// Len returns the number of samples in the recording
func (r *Recording) Len() int {
	if r == nil {
		return 0
	}
	return len(r.SecondsZeroed)
}

// SampleRate estimates the sampling frequency in Hz from the mean spacing of
// the zeroed time column.
func (r *Recording) SampleRate() (float64, error) {
	if r.Len() < 2 {
		return 0, fmt.Errorf("sample rate estimation needs at least 2 samples: %w", ErrNoData)
	}

	n := len(r.SecondsZeroed)
	meanDiff := (r.SecondsZeroed[n-1] - r.SecondsZeroed[0]) / float64(n-1)
	if meanDiff <= 0 {
		return 0, fmt.Errorf("time column is not increasing, mean spacing %g", meanDiff)
	}
	return 1 / meanDiff, nil
}

// IsCorrected reports whether every axis carries a corrected series
func (r *Recording) IsCorrected() bool {
	if r == nil {
		return false
	}
	for _, axis := range r.Axes {
		if len(axis.Corrected) != r.Len() || r.Len() == 0 {
			return false
		}
	}
	return true
}

// IsFiltered reports whether every axis carries a filtered series
func (r *Recording) IsFiltered() bool {
	if r == nil {
		return false
	}
	for _, axis := range r.Axes {
		if len(axis.Filtered) != r.Len() || r.Len() == 0 {
			return false
		}
	}
	return true
}
