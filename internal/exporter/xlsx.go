package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"harcli/internal/dataprocessing"
	"harcli/internal/errors"
)

// xlsxSheetName is the single worksheet holding the tidy table.
const xlsxSheetName = "Tidy Dataset"

// XLSXWriter writes tidy tables as Excel workbooks.
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new XLSX writer instance
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// WriteTidy writes the tidy table to path as a one-sheet workbook with the
// same header and row layout as the CSV output.
func (w *XLSXWriter) WriteTidy(ctx context.Context, path string, table *dataprocessing.TidyTable) error {
	w.logger.InfoContext(ctx, "writing tidy XLSX",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), xlsxSheetName)

	if err := setRow(f, 1, headerCells(table)); err != nil {
		return errors.NewStorageError("failed to write XLSX header row", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, 0, len(row.Means)+2)
		cells = append(cells, row.SubjectID, row.Activity)
		for _, mean := range row.Means {
			cells = append(cells, mean)
		}
		if err := setRow(f, i+2, cells); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write XLSX row %d", i+2), err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to save %s", path), err)
	}

	return nil
}

func headerCells(table *dataprocessing.TidyTable) []interface{} {
	header := table.Header()
	cells := make([]interface{}, len(header))
	for i, name := range header {
		cells[i] = name
	}
	return cells
}

func setRow(f *excelize.File, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(xlsxSheetName, cell, &cells)
}
