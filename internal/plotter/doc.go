// Package plotter renders processed recordings as PNG charts: one stacked
// sub-plot per accelerometer axis, all sharing the zeroed time base.
// Rendering is delegated to gonum/plot.
package plotter
