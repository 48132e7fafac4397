package dataprocessing

// Column names of the two key columns in every table this package builds.
const (
	SubjectColumn  = "Subject.ID"
	ActivityColumn = "Activity.Type"
)

// ObservationRow is one sensor-window sample from one partition. Values is
// aligned positionally to the table's MeasurementNames.
type ObservationRow struct {
	SubjectID int
	Activity  string
	Values    []float64
}

// Table is a rectangular slice of the dataset: the subject and activity key
// columns plus the filtered measurement columns. Each stage produces a new
// Table and never mutates one it received.
type Table struct {
	MeasurementNames []string
	Rows             []ObservationRow
}

// Header returns the full ordered column names, key columns first.
func (t *Table) Header() []string {
	header := make([]string, 0, len(t.MeasurementNames)+2)
	header = append(header, SubjectColumn, ActivityColumn)
	return append(header, t.MeasurementNames...)
}

// NumRows returns the number of observation rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// TidyRow is one aggregated row: the group key and the per-column means over
// every observation sharing that key.
type TidyRow struct {
	SubjectID int
	Activity  string
	Means     []float64
}

// TidyTable is the final output table, one row per distinct
// (subject, activity) pair, sorted by subject then activity.
type TidyTable struct {
	MeasurementNames []string
	Rows             []TidyRow
}

// Header returns the full ordered column names, key columns first.
func (t *TidyTable) Header() []string {
	header := make([]string, 0, len(t.MeasurementNames)+2)
	header = append(header, SubjectColumn, ActivityColumn)
	return append(header, t.MeasurementNames...)
}
