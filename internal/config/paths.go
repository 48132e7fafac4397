package config

import (
	"fmt"
	"os"
	"path/filepath"

	"harcli/internal/errors"
)

// Canonical partition names. The raw dataset ships exactly these two.
const (
	PartitionTrain = "train"
	PartitionTest  = "test"
)

// Partitions lists the partitions in merge order (train rows first).
var Partitions = []string{PartitionTrain, PartitionTest}

// PartitionPaths holds the resolved paths of one partition's file triple.
// Row i of each file refers to the same observation; correspondence is
// purely positional.
type PartitionPaths struct {
	Name            string
	SubjectFile     string
	ActivityFile    string
	MeasurementFile string
}

// FeaturesPath returns the resolved path of the feature catalog.
func (c DatasetConfig) FeaturesPath() string {
	return filepath.Join(c.RootDir, c.FeaturesFile)
}

// Partition resolves the file triple of the named partition using the
// canonical dataset layout: <root>/<p>/subject_<p>.txt, <root>/<p>/y_<p>.txt,
// <root>/<p>/X_<p>.txt.
func (c DatasetConfig) Partition(name string) PartitionPaths {
	dir := filepath.Join(c.RootDir, name)
	return PartitionPaths{
		Name:            name,
		SubjectFile:     filepath.Join(dir, fmt.Sprintf("subject_%s.txt", name)),
		ActivityFile:    filepath.Join(dir, fmt.Sprintf("y_%s.txt", name)),
		MeasurementFile: filepath.Join(dir, fmt.Sprintf("X_%s.txt", name)),
	}
}

// Verify checks that all three partition files exist before any loading
// starts, so a missing file surfaces as one clear error up front.
func (p PartitionPaths) Verify() error {
	for _, path := range []string{p.SubjectFile, p.ActivityFile, p.MeasurementFile} {
		if _, err := os.Stat(path); err != nil {
			return errors.NewStorageError(
				fmt.Sprintf("partition %s is missing input file %s", p.Name, path), err)
		}
	}
	return nil
}

// VerifyDataset checks the feature catalog and every partition triple.
func (c DatasetConfig) VerifyDataset() error {
	if _, err := os.Stat(c.FeaturesPath()); err != nil {
		return errors.NewStorageError(
			fmt.Sprintf("feature catalog not found at %s", c.FeaturesPath()), err)
	}
	for _, name := range Partitions {
		if err := c.Partition(name).Verify(); err != nil {
			return err
		}
	}
	return nil
}
