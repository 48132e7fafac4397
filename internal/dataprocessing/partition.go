package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"harcli/internal/config"
	"harcli/internal/errors"
)

// PartitionLoader loads one partition's subject/activity/measurement file
// triple into a Table. The three files correspond line by line; the loader
// refuses partitions whose files disagree on row count.
type PartitionLoader struct {
	logger  *slog.Logger
	catalog *Catalog
}

// NewPartitionLoader creates a loader bound to one feature catalog.
func NewPartitionLoader(logger *slog.Logger, catalog *Catalog) *PartitionLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &PartitionLoader{logger: logger, catalog: catalog}
}

// Load reads the partition at the given paths and composes it columnwise:
// subject ID, activity label, then the filtered measurements. Any subject
// integer is accepted; activity codes must be in the fixed 1-6 map.
func (l *PartitionLoader) Load(ctx context.Context, paths config.PartitionPaths) (*Table, error) {
	l.logger.InfoContext(ctx, "loading partition",
		slog.String("partition", paths.Name),
		slog.String("measurement_file", paths.MeasurementFile))

	subjects, err := readIntColumn(paths.SubjectFile)
	if err != nil {
		return nil, fmt.Errorf("load partition %s subjects: %w", paths.Name, err)
	}

	codes, err := readIntColumn(paths.ActivityFile)
	if err != nil {
		return nil, fmt.Errorf("load partition %s activities: %w", paths.Name, err)
	}
	activities := make([]string, len(codes))
	for i, code := range codes {
		label, err := ActivityLabel(code)
		if err != nil {
			return nil, fmt.Errorf("partition %s activity line %d: %w", paths.Name, i+1, err)
		}
		activities[i] = label
	}

	measurements, err := LoadMeasurements(paths.MeasurementFile, l.catalog)
	if err != nil {
		return nil, fmt.Errorf("load partition %s: %w", paths.Name, err)
	}

	if len(subjects) != len(activities) || len(subjects) != len(measurements) {
		return nil, errors.NewRowCountMismatchError(
			fmt.Sprintf("partition %s files disagree on row count: %d subjects, %d activities, %d measurement rows",
				paths.Name, len(subjects), len(activities), len(measurements))).
			WithContext("partition", paths.Name)
	}

	rows := make([]ObservationRow, len(subjects))
	for i := range subjects {
		rows[i] = ObservationRow{
			SubjectID: subjects[i],
			Activity:  activities[i],
			Values:    measurements[i],
		}
	}

	l.logger.InfoContext(ctx, "partition loaded",
		slog.String("partition", paths.Name),
		slog.Int("rows", len(rows)),
		slog.Int("measurement_columns", len(l.catalog.KeptIndexes())))

	return &Table{
		MeasurementNames: l.catalog.KeptNames(),
		Rows:             rows,
	}, nil
}
