// Command tidy turns the raw two-partition sensor dataset into one tidy
// CSV or XLSX table: one row per (subject, activity) pair carrying the mean
// of every mean/std measurement feature.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"harcli/internal/config"
	"harcli/internal/dataprocessing"
	"harcli/internal/exporter"
	"harcli/internal/infrastructure"
)

func main() {
	dataDir := flag.String("data", "", "dataset root directory (defaults to config dataset.root_dir)")
	out := flag.String("out", "", "output file path (defaults to config output.path)")
	format := flag.String("format", "", "output format: csv | xlsx (defaults to config output.format)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override config and environment.
	if *dataDir != "" {
		cfg.Dataset.RootDir = *dataDir
	}
	if *out != "" {
		cfg.Output.Path = *out
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "starting tidy dataset run",
		slog.String("dataset_root", cfg.Dataset.RootDir),
		slog.String("output_path", cfg.Output.Path),
		slog.String("output_format", cfg.Output.Format))

	if err := cfg.Dataset.VerifyDataset(); err != nil {
		logger.ErrorContext(ctx, "dataset layout verification failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := dataprocessing.NewPipeline(logger, cfg.Dataset)
	tidy, err := pipeline.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writer, err := exporter.ForFormat(cfg.Output.Format, logger)
	if err != nil {
		logger.ErrorContext(ctx, "cannot select output writer", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := writer.WriteTidy(ctx, cfg.Output.Path, tidy); err != nil {
		logger.ErrorContext(ctx, "failed to write tidy table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "tidy dataset written",
		slog.String("path", cfg.Output.Path),
		slog.Int("rows", len(tidy.Rows)),
		slog.Int("columns", len(tidy.Header())))
}
