// Package exporter writes the tidy table to disk, as CSV or XLSX.
package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"harcli/internal/dataprocessing"
	"harcli/internal/errors"
)

// CSVWriter writes tidy tables as delimited text with a header row.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteTidy writes the tidy table to path: header first, then one record
// per row, no index column. Measurement values keep full float64 precision.
func (w *CSVWriter) WriteTidy(ctx context.Context, path string, table *dataprocessing.TidyTable) error {
	w.logger.InfoContext(ctx, "writing tidy CSV",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Header()); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}

	for _, row := range table.Rows {
		record := make([]string, 0, len(row.Means)+2)
		record = append(record, strconv.Itoa(row.SubjectID), row.Activity)
		for _, mean := range row.Means {
			record = append(record, strconv.FormatFloat(mean, 'g', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}

	return nil
}
