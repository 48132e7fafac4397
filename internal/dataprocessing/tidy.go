package dataprocessing

import "strings"

// renameRule is one literal substring substitution applied to every
// occurrence in a column name.
type renameRule struct {
	old string
	new string
}

// renameRules is applied in this exact order. The domain prefixes must be
// rewritten before Acc becomes Accel, and the dashed -mean()-/-std()- forms
// must be tried before the bare suffix forms so no dangling dash survives.
var renameRules = []renameRule{
	{"tBody", "Time.Body."},
	{"tGravity", "Time.Gravity."},
	{"fBody", "Frequency.Body."},
	{"Acc", "Accel"},
	{"-mean()-", ".Mean."},
	{"-std()-", ".StdDev."},
	{"-mean()", ".Mean"},
	{"-std()", ".StdDev"},
}

// tidyName rewrites one raw measurement name into the tidy convention, each
// rule's output feeding the next.
func tidyName(name string) string {
	for _, rule := range renameRules {
		name = strings.ReplaceAll(name, rule.old, rule.new)
	}
	return name
}

// TidyColumnNames returns the tidy form of each measurement column name,
// preserving order. The input slice is not modified.
func TidyColumnNames(names []string) []string {
	tidied := make([]string, len(names))
	for i, name := range names {
		tidied[i] = tidyName(name)
	}
	return tidied
}

// WithTidyNames returns a new table with tidied measurement column names.
// Rows are shared with the input; only the key columns keep their names.
func (t *TidyTable) WithTidyNames() *TidyTable {
	return &TidyTable{
		MeasurementNames: TidyColumnNames(t.MeasurementNames),
		Rows:             t.Rows,
	}
}
