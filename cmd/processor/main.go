package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"risecli/internal/config"
	"risecli/internal/dataprocessing"
	"risecli/internal/exporter"
	"risecli/internal/files"
	"risecli/internal/infrastructure"
	"risecli/internal/plotter"
)

func main() {
	in := flag.String("in", "", "recording file or directory of .txt recordings (defaults to the configured data directory)")
	method := flag.String("method", dataprocessing.MethodMean, "baseline correction method: mean or polynomial")
	low := flag.Float64("low", 0, "band-pass low cutoff in Hz (0 disables filtering)")
	high := flag.Float64("high", 0, "band-pass high cutoff in Hz")
	order := flag.Int("order", dataprocessing.DefaultFilterOrder, "band-pass filter order")
	writeCSV := flag.Bool("csv", false, "export the processed recording as CSV")
	writeXLSX := flag.Bool("xlsx", false, "export the processed recording as XLSX")
	writePlot := flag.Bool("plot", false, "render the corrected axes as a PNG chart")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		logger.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create directories", "error", err)
		os.Exit(1)
	}

	if *in == "" {
		*in = paths.DataDir
	}

	recordings, err := collectRecordings(*in)
	if err != nil {
		logger.Error("Failed to find recordings", "error", err, "in", *in)
		os.Exit(1)
	}
	if len(recordings) == 0 {
		logger.Error("No recording files found", "in", *in)
		os.Exit(1)
	}

	failed := 0
	for _, path := range recordings {
		if err := processRecording(path, *method, *low, *high, *order,
			*writeCSV, *writeXLSX, *writePlot, paths, logger); err != nil {
			logger.Error("Processing failed", "error", err, "file", path)
			failed++
		}
	}

	logger.Info("Processing complete",
		slog.Int("processed", len(recordings)-failed),
		slog.Int("failed", failed))
	if failed > 0 {
		os.Exit(1)
	}
}

// collectRecordings resolves the input flag to a list of recording files. A
// file argument is taken as-is; a directory is searched recursively.
func collectRecordings(in string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{in}, nil
	}

	found, err := files.NewDiscovery(in).FindRecordingFiles(".")
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(found))
	for _, f := range found {
		paths = append(paths, f.Path)
	}
	return paths, nil
}

func processRecording(path, method string, low, high float64, order int,
	writeCSV, writeXLSX, writePlot bool, paths *config.Paths, logger *slog.Logger) error {

	logger.Info("Processing recording", slog.String("file", path))

	rec, err := dataprocessing.ReadRecording(path)
	if err != nil {
		return fmt.Errorf("read recording: %w", err)
	}

	if err := dataprocessing.BaselineCorrect(rec, method); err != nil {
		return fmt.Errorf("baseline correction: %w", err)
	}

	if low > 0 || high > 0 {
		params := dataprocessing.FilterParams{LowCut: low, HighCut: high, Order: order}
		if err := dataprocessing.BandPassFilter(rec, params); err != nil {
			return fmt.Errorf("band-pass filter: %w", err)
		}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if writeCSV {
		out := filepath.Join(paths.ExportsDir, base+".csv")
		if err := exporter.NewCSVWriter(false).WriteRecording(out, rec); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		logger.Info("Wrote CSV export", slog.String("path", out))
	}

	if writeXLSX {
		out := filepath.Join(paths.ExportsDir, base+".xlsx")
		if err := exporter.NewExcelWriter().WriteRecording(out, rec); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		logger.Info("Wrote XLSX export", slog.String("path", out))
	}

	if writePlot {
		out := filepath.Join(paths.PlotsDir, base+".png")
		if err := plotter.PlotCorrected(rec, out); err != nil {
			return fmt.Errorf("render plot: %w", err)
		}
		logger.Info("Wrote plot", slog.String("path", out))
	}

	return nil
}
