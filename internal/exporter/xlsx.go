package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"risecli/internal/dataprocessing"
)

// sheetName is the worksheet used for recording exports
const sheetName = "Recording"

// ExcelWriter provides Excel export functionality
type ExcelWriter struct{}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter() *ExcelWriter {
	return &ExcelWriter{}
}

// WriteRecording writes a processed recording to an .xlsx file with a single
// worksheet holding the same columns as the CSV export.
func (w *ExcelWriter) WriteRecording(path string, rec *dataprocessing.Recording) error {
	if rec.Len() == 0 {
		return fmt.Errorf("cannot export: %w", dataprocessing.ErrNoData)
	}

	headers, records := recordingTable(rec)

	slog.Info("Writing Excel export",
		slog.String("path", path),
		slog.Int("rows", len(records)))

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create worksheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default worksheet: %w", err)
	}

	writeRow := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheetName, cell, &row)
	}

	if err := writeRow(1, headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writeRow(i+2, record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
