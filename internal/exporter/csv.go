package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"risecli/internal/dataprocessing"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	bomPrefix bool
}

// NewCSVWriter creates a new CSV writer instance. With bomPrefix set the
// output starts with a UTF-8 BOM, which helps Excel recognize the encoding.
func NewCSVWriter(bomPrefix bool) *CSVWriter {
	return &CSVWriter{bomPrefix: bomPrefix}
}

// WriteRecording writes a processed recording to a CSV file.
func (w *CSVWriter) WriteRecording(path string, rec *dataprocessing.Recording) error {
	if rec.Len() == 0 {
		return fmt.Errorf("cannot export: %w", dataprocessing.ErrNoData)
	}

	headers, records := recordingTable(rec)

	slog.Info("Writing CSV export",
		slog.String("path", path),
		slog.Int("rows", len(records)),
		slog.Int("columns", len(headers)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if w.bomPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}
