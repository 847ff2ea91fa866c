// Package exporter writes processed recordings to CSV and Excel files.
//
// Exports carry the original columns first, then the corrected and filtered
// series per axis (X, Y, Z) for whichever transformations have been applied.
// CSV output optionally starts with a UTF-8 BOM so Excel opens it correctly.
package exporter
