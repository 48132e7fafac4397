package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"harcli/internal/dataprocessing"
	"harcli/internal/errors"
)

// TidyWriter writes one tidy table to one output artifact.
type TidyWriter interface {
	WriteTidy(ctx context.Context, path string, table *dataprocessing.TidyTable) error
}

// ForFormat returns the writer for the named output format.
func ForFormat(format string, logger *slog.Logger) (TidyWriter, error) {
	switch format {
	case "csv":
		return NewCSVWriter(logger), nil
	case "xlsx":
		return NewXLSXWriter(logger), nil
	default:
		return nil, errors.NewConfigError(fmt.Sprintf("unsupported output format %q", format), nil)
	}
}
