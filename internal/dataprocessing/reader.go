package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// ReadRecording reads an accelerometer recording from a tab-separated file.
// The header must contain every column in RequiredColumns; extra columns are
// ignored. The row count of the file is preserved.
func ReadRecording(path string) (*Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse recording file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("recording file %s is empty: %w", path, ErrNoData)
	}

	header := rows[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	rows = rows[1:]
	rec := &Recording{
		Date:          make([]string, 0, len(rows)),
		Time:          make([]string, 0, len(rows)),
		SecondsZeroed: make([]float64, 0, len(rows)),
		SecondsSynced: make([]float64, 0, len(rows)),
		Axes: [3]Axis{
			{Name: ColumnAccX, Raw: make([]float64, 0, len(rows))},
			{Name: ColumnAccY, Raw: make([]float64, 0, len(rows))},
			{Name: ColumnAccZ, Raw: make([]float64, 0, len(rows))},
		},
	}

	parse := func(row []string, column string, rowNum int) (float64, error) {
		idx := columns[column]
		if idx >= len(row) {
			return 0, fmt.Errorf("row %d has no value for column %q", rowNum, column)
		}
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return 0, fmt.Errorf("row %d column %q: %w", rowNum, column, err)
		}
		return v, nil
	}

	for i, row := range rows {
		rowNum := i + 2 // 1-based, header included

		zeroed, err := parse(row, ColumnSecondsZeroed, rowNum)
		if err != nil {
			return nil, err
		}
		synced, err := parse(row, ColumnSecondsSynced, rowNum)
		if err != nil {
			return nil, err
		}

		date, err := field(row, columns[ColumnDate], ColumnDate, rowNum)
		if err != nil {
			return nil, err
		}
		clock, err := field(row, columns[ColumnTime], ColumnTime, rowNum)
		if err != nil {
			return nil, err
		}

		rec.SecondsZeroed = append(rec.SecondsZeroed, zeroed)
		rec.SecondsSynced = append(rec.SecondsSynced, synced)
		rec.Date = append(rec.Date, date)
		rec.Time = append(rec.Time, clock)

		for a := range rec.Axes {
			v, err := parse(row, rec.Axes[a].Name, rowNum)
			if err != nil {
				return nil, err
			}
			rec.Axes[a].Raw = append(rec.Axes[a].Raw, v)
		}
	}

	slog.Debug("Recording loaded",
		slog.String("path", path),
		slog.Int("samples", rec.Len()))

	return rec, nil
}

func field(row []string, idx int, column string, rowNum int) (string, error) {
	if idx >= len(row) {
		return "", fmt.Errorf("row %d has no value for column %q", rowNum, column)
	}
	return row[idx], nil
}
