package dataprocessing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harcli/internal/errors"
)

func testCatalog(t *testing.T, input string) *Catalog {
	t.Helper()
	catalog, err := ParseCatalog(strings.NewReader(input))
	require.NoError(t, err)
	return catalog
}

func TestParseMeasurements_ProjectsToKeptColumns(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n2 tBodyAcc-max()-X\n3 tBodyAcc-std()-X\n")

	input := "0.1 9.0 0.2\n  0.3   9.0\t0.4\n-1.5e-2 9.0 2.0\n"
	rows, err := parseMeasurements(strings.NewReader(input), catalog)
	require.NoError(t, err)

	// The max() column is dropped; relative order of the kept columns holds.
	assert.Equal(t, [][]float64{
		{0.1, 0.2},
		{0.3, 0.4},
		{-0.015, 2.0},
	}, rows)
}

func TestParseMeasurements_WidthMismatch(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n2 tBodyAcc-std()-X\n")

	_, err := parseMeasurements(strings.NewReader("0.1 0.2\n0.3\n"), catalog)
	require.Error(t, err)
	assert.True(t, errors.IsSchemaMismatch(err))
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseMeasurements_BadFloat(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n2 tBodyAcc-std()-X\n")

	_, err := parseMeasurements(strings.NewReader("0.1 not-a-number\n"), catalog)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
}

func TestParseMeasurements_Empty(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n")

	rows, err := parseMeasurements(strings.NewReader(""), catalog)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadMeasurements_MissingFile(t *testing.T) {
	catalog := testCatalog(t, "1 tBodyAcc-mean()-X\n")

	_, err := LoadMeasurements(filepath.Join(t.TempDir(), "absent.txt"), catalog)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
}

func TestReadIntColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject.txt")
	require.NoError(t, os.WriteFile(path, []byte(" 1\n22\n-3\n"), 0644))

	values, err := readIntColumn(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 22, -3}, values)
}

func TestReadIntColumn_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\ntwo\n"), 0644))

	_, err := readIntColumn(path)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Contains(t, err.Error(), "line 2")
}
