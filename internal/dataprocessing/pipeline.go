package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"harcli/internal/config"
)

// Pipeline runs the full transformation: catalog, both partitions, merge,
// aggregate, tidy names. Stages run synchronously in call order; each one
// consumes its whole input before the next starts.
type Pipeline struct {
	logger  *slog.Logger
	dataset config.DatasetConfig
}

// NewPipeline creates a pipeline over the configured dataset.
func NewPipeline(logger *slog.Logger, dataset config.DatasetConfig) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, dataset: dataset}
}

// Run executes the pipeline and returns the tidy table. Any stage failure
// aborts the run with the stage's typed error.
func (p *Pipeline) Run(ctx context.Context) (*TidyTable, error) {
	catalog, err := LoadCatalog(p.dataset.FeaturesPath())
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "feature catalog loaded",
		slog.Int("features", catalog.Size()),
		slog.Int("kept_columns", len(catalog.KeptIndexes())))

	loader := NewPartitionLoader(p.logger, catalog)
	tables := make([]*Table, 0, len(config.Partitions))
	for _, name := range config.Partitions {
		table, err := loader.Load(ctx, p.dataset.Partition(name))
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	merged, err := Merge(tables[0], tables[1])
	if err != nil {
		return nil, fmt.Errorf("merge partitions: %w", err)
	}
	p.logger.InfoContext(ctx, "partitions merged", slog.Int("rows", merged.NumRows()))

	tidy := NewAggregator(p.logger).Aggregate(ctx, merged).WithTidyNames()
	return tidy, nil
}
