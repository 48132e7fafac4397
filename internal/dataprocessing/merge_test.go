package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harcli/internal/errors"
)

func obsRow(subject int, activity string, values ...float64) ObservationRow {
	return ObservationRow{SubjectID: subject, Activity: activity, Values: values}
}

func TestMerge(t *testing.T) {
	train := &Table{
		MeasurementNames: []string{"a-mean()", "a-std()"},
		Rows: []ObservationRow{
			obsRow(1, "WALKING", 1, 2),
			obsRow(2, "SITTING", 3, 4),
		},
	}
	test := &Table{
		MeasurementNames: []string{"a-mean()", "a-std()"},
		Rows: []ObservationRow{
			obsRow(3, "LAYING", 5, 6),
		},
	}

	merged, err := Merge(train, test)
	require.NoError(t, err)

	assert.Equal(t, train.MeasurementNames, merged.MeasurementNames)
	require.Equal(t, 3, merged.NumRows())
	// Train rows come first, test rows after, order preserved.
	assert.Equal(t, train.Rows[0], merged.Rows[0])
	assert.Equal(t, train.Rows[1], merged.Rows[1])
	assert.Equal(t, test.Rows[0], merged.Rows[2])
}

func TestMerge_KeepsDuplicateRows(t *testing.T) {
	row := obsRow(1, "WALKING", 1.5)
	first := &Table{MeasurementNames: []string{"a-mean()"}, Rows: []ObservationRow{row}}
	second := &Table{MeasurementNames: []string{"a-mean()"}, Rows: []ObservationRow{row}}

	merged, err := Merge(first, second)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.NumRows())
}

func TestMerge_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name   string
		first  []string
		second []string
	}{
		{"different column count", []string{"a-mean()", "a-std()"}, []string{"a-mean()"}},
		{"different column name", []string{"a-mean()", "a-std()"}, []string{"a-mean()", "b-std()"}},
		{"same names, different order", []string{"a-mean()", "a-std()"}, []string{"a-std()", "a-mean()"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(
				&Table{MeasurementNames: tt.first},
				&Table{MeasurementNames: tt.second},
			)
			require.Error(t, err)
			assert.True(t, errors.IsSchemaMismatch(err))
		})
	}
}

func TestMerge_EmptySecondPartition(t *testing.T) {
	train := &Table{MeasurementNames: []string{"a-mean()"}, Rows: []ObservationRow{obsRow(1, "WALKING", 1)}}
	test := &Table{MeasurementNames: []string{"a-mean()"}}

	merged, err := Merge(train, test)
	require.NoError(t, err)
	assert.Equal(t, 1, merged.NumRows())
}
