package exporter

import (
	"strconv"

	"risecli/internal/dataprocessing"
)

// recordingTable flattens a recording into a header row plus string records,
// in export column order: original columns, corrected series, filtered series.
func recordingTable(rec *dataprocessing.Recording) ([]string, [][]string) {
	headers := []string{
		dataprocessing.ColumnDate,
		dataprocessing.ColumnTime,
		dataprocessing.ColumnSecondsZeroed,
		dataprocessing.ColumnSecondsSynced,
	}
	for _, axis := range rec.Axes {
		headers = append(headers, axis.Name)
	}
	if rec.IsCorrected() {
		for _, axis := range rec.Axes {
			headers = append(headers, axis.Name+" corrected")
		}
	}
	if rec.IsFiltered() {
		for _, axis := range rec.Axes {
			headers = append(headers, axis.Name+" filtered")
		}
	}

	records := make([][]string, rec.Len())
	for i := 0; i < rec.Len(); i++ {
		row := []string{
			rec.Date[i],
			rec.Time[i],
			formatFloat(rec.SecondsZeroed[i]),
			formatFloat(rec.SecondsSynced[i]),
		}
		for _, axis := range rec.Axes {
			row = append(row, formatFloat(axis.Raw[i]))
		}
		if rec.IsCorrected() {
			for _, axis := range rec.Axes {
				row = append(row, formatFloat(axis.Corrected[i]))
			}
		}
		if rec.IsFiltered() {
			for _, axis := range rec.Axes {
				row = append(row, formatFloat(axis.Filtered[i]))
			}
		}
		records[i] = row
	}

	return headers, records
}

// formatFloat formats a sample for export without losing precision
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
