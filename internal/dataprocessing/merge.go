package dataprocessing

import (
	"fmt"

	"harcli/internal/errors"
)

// Merge concatenates two partition tables, first's rows before second's,
// after asserting the measurement schemas are identical in name and order.
// Rows are never deduplicated.
func Merge(first, second *Table) (*Table, error) {
	if len(first.MeasurementNames) != len(second.MeasurementNames) {
		return nil, errors.NewSchemaMismatchError(
			fmt.Sprintf("partitions disagree on column count: %d vs %d",
				len(first.MeasurementNames), len(second.MeasurementNames)))
	}
	for i, name := range first.MeasurementNames {
		if second.MeasurementNames[i] != name {
			return nil, errors.NewSchemaMismatchError(
				fmt.Sprintf("partitions disagree on column %d: %q vs %q",
					i+1, name, second.MeasurementNames[i]))
		}
	}

	rows := make([]ObservationRow, 0, len(first.Rows)+len(second.Rows))
	rows = append(rows, first.Rows...)
	rows = append(rows, second.Rows...)

	return &Table{
		MeasurementNames: first.MeasurementNames,
		Rows:             rows,
	}, nil
}
