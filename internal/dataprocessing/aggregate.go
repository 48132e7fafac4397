package dataprocessing

import (
	"context"
	"log/slog"
	"sort"
)

// Aggregator collapses a merged table to one row per (subject, activity)
// pair, replacing each group's measurement rows with their column-wise
// arithmetic means.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an aggregator.
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// groupKey identifies one (subject, activity) group by exact equality on
// both fields.
type groupKey struct {
	subjectID int
	activity  string
}

// groupAccum accumulates per-column sums for one group.
type groupAccum struct {
	sums  []float64
	count int
}

// Aggregate groups rows by (subject, activity) and emits one TidyRow per
// group. Iteration over the map is randomized, so rows are sorted by subject
// then activity for deterministic output. Column order is preserved; values
// use plain IEEE double summation and division.
func (a *Aggregator) Aggregate(ctx context.Context, table *Table) *TidyTable {
	a.logger.InfoContext(ctx, "aggregating merged table",
		slog.Int("rows", table.NumRows()),
		slog.Int("measurement_columns", len(table.MeasurementNames)))

	columns := len(table.MeasurementNames)
	groups := make(map[groupKey]*groupAccum)
	for _, row := range table.Rows {
		key := groupKey{subjectID: row.SubjectID, activity: row.Activity}
		accum, ok := groups[key]
		if !ok {
			accum = &groupAccum{sums: make([]float64, columns)}
			groups[key] = accum
		}
		for i, value := range row.Values {
			accum.sums[i] += value
		}
		accum.count++
	}

	tidyRows := make([]TidyRow, 0, len(groups))
	for key, accum := range groups {
		means := make([]float64, columns)
		for i, sum := range accum.sums {
			means[i] = sum / float64(accum.count)
		}
		tidyRows = append(tidyRows, TidyRow{
			SubjectID: key.subjectID,
			Activity:  key.activity,
			Means:     means,
		})
	}

	sort.Slice(tidyRows, func(i, j int) bool {
		if tidyRows[i].SubjectID != tidyRows[j].SubjectID {
			return tidyRows[i].SubjectID < tidyRows[j].SubjectID
		}
		return tidyRows[i].Activity < tidyRows[j].Activity
	})

	a.logger.InfoContext(ctx, "aggregation complete",
		slog.Int("groups", len(tidyRows)))

	return &TidyTable{
		MeasurementNames: table.MeasurementNames,
		Rows:             tidyRows,
	}
}
