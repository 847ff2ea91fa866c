// Package dataprocessing provides the accelerometer time-series pipeline for
// RISE monitoring recordings.
//
// The package is organized into three main components:
//
//  1. Reader: loads tab-separated recordings with a fixed expected column set
//  2. Baseline correction: removes the per-axis offset or slow trend
//  3. Band-pass filter: Butterworth design plus zero-phase filtering
//
// # Data Flow
//
// The typical flow through this package:
//
//	TSV File → ReadRecording → Recording → BaselineCorrect → BandPassFilter → exporter/plotter
//
// Both transformations mutate the Recording in place, adding per-axis
// Corrected and Filtered series while leaving the raw samples and the row
// count untouched.
//
// # Error Handling
//
// Callers branch on the sentinel errors (ErrMissingColumn,
// ErrUnsupportedMethod, ErrNoData, ErrNotCorrected); everything else is a
// wrapped error with row/column context. The first error aborts the
// operation, there is no partial recovery.
package dataprocessing
