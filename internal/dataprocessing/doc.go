// Package dataprocessing implements the transformation pipeline that turns
// the raw two-partition sensor dataset into one tidy table: one row per
// (subject, activity) pair carrying the mean of every mean/std measurement
// feature, under normalized column names.
//
// # Architecture
//
// The package is organized around the stages of the pipeline:
//
//  1. Catalog: parses the feature catalog and derives the mean()/std() filter
//  2. PartitionLoader: loads one partition's subject/activity/measurement triple
//  3. Merge: concatenates the two partitions after a schema check
//  4. Aggregator: collapses each (subject, activity) group to its column means
//  5. TidyColumnNames: rewrites measurement names into the tidy convention
//
// Pipeline wires the stages together; the CLI is a thin shell around it.
//
// # Error Handling
//
// Every failure is a typed *errors.AppError (PARSE, SCHEMA_MISMATCH,
// ROW_COUNT_MISMATCH, UNKNOWN_ACTIVITY_CODE, STORAGE) and propagates
// unmodified to the caller. The pipeline produces one complete tidy table or
// nothing.
package dataprocessing
