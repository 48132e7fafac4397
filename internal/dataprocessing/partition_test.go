package dataprocessing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harcli/internal/config"
	"harcli/internal/errors"
)

// writePartition lays out one partition file triple in a temp dir and
// returns its paths.
func writePartition(t *testing.T, name, subjects, activities, measurements string) config.PartitionPaths {
	t.Helper()
	dir := t.TempDir()
	paths := config.PartitionPaths{
		Name:            name,
		SubjectFile:     filepath.Join(dir, "subject_"+name+".txt"),
		ActivityFile:    filepath.Join(dir, "y_"+name+".txt"),
		MeasurementFile: filepath.Join(dir, "X_"+name+".txt"),
	}
	require.NoError(t, os.WriteFile(paths.SubjectFile, []byte(subjects), 0644))
	require.NoError(t, os.WriteFile(paths.ActivityFile, []byte(activities), 0644))
	require.NoError(t, os.WriteFile(paths.MeasurementFile, []byte(measurements), 0644))
	return paths
}

func TestPartitionLoader_Load(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n2 tBodyAcc-max()-X\n")
	paths := writePartition(t, "train",
		"1\n1\n30\n",
		"1\n2\n6\n",
		"0.5 9\n1.5 9\n-2.5 9\n")

	table, err := NewPartitionLoader(nil, catalog).Load(context.Background(), paths)
	require.NoError(t, err)

	assert.Equal(t, []string{"tBodyAcc-mean()-X"}, table.MeasurementNames)
	assert.Equal(t, []string{"Subject.ID", "Activity.Type", "tBodyAcc-mean()-X"}, table.Header())
	require.Equal(t, 3, table.NumRows())

	assert.Equal(t, ObservationRow{SubjectID: 1, Activity: "WALKING", Values: []float64{0.5}}, table.Rows[0])
	assert.Equal(t, ObservationRow{SubjectID: 1, Activity: "WALKING_UPSTAIRS", Values: []float64{1.5}}, table.Rows[1])
	assert.Equal(t, ObservationRow{SubjectID: 30, Activity: "LAYING", Values: []float64{-2.5}}, table.Rows[2])
}

func TestPartitionLoader_RowCountMismatch(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n")

	// 10 subjects, 10 activities, 9 measurement rows: the partition is
	// malformed and loading must fail rather than truncate or pad.
	subjects, activities, measurements := "", "", ""
	for i := 0; i < 10; i++ {
		subjects += "1\n"
		activities += "1\n"
		if i < 9 {
			measurements += "0.0\n"
		}
	}
	paths := writePartition(t, "train", subjects, activities, measurements)

	_, err := NewPartitionLoader(nil, catalog).Load(context.Background(), paths)
	require.Error(t, err)
	assert.True(t, errors.IsRowCountMismatch(err))
	assert.Contains(t, err.Error(), "10 subjects")
	assert.Contains(t, err.Error(), "9 measurement rows")
}

func TestPartitionLoader_UnknownActivityCode(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n")
	paths := writePartition(t, "test",
		"1\n2\n",
		"1\n7\n",
		"0.0\n0.0\n")

	_, err := NewPartitionLoader(nil, catalog).Load(context.Background(), paths)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownActivity(err), "code 7 must abort the whole load")
}

func TestPartitionLoader_EmptyPartition(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n")
	paths := writePartition(t, "test", "", "", "")

	table, err := NewPartitionLoader(nil, catalog).Load(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, 0, table.NumRows())
	assert.Equal(t, []string{"tBodyAcc-mean()-X"}, table.MeasurementNames)
}

func TestPartitionLoader_AnySubjectIDAccepted(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n")
	paths := writePartition(t, "train", "-42\n", "3\n", "1.0\n")

	table, err := NewPartitionLoader(nil, catalog).Load(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, -42, table.Rows[0].SubjectID)
}
