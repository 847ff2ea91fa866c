// Package dsp provides the digital signal processing primitives used by the
// accelerometer pipeline.
//
// The package intentionally keeps to time-domain filtering. It implements
// Butterworth band-pass design (analog prototype, band transform, bilinear
// transform) producing transfer-function coefficients, a direct form II
// transposed filter, and zero-phase forward-backward filtering with
// odd-symmetric edge padding and steady-state initial conditions.
//
// Linear algebra (steady state, least squares) is delegated to gonum/mat.
package dsp
