package dataprocessing

import "harcli/internal/errors"

// activityLabels is the fixed code-to-label map of the dataset. Codes
// outside 1-6 are a data-integrity error, never silently accepted.
var activityLabels = map[int]string{
	1: "WALKING",
	2: "WALKING_UPSTAIRS",
	3: "WALKING_DOWNSTAIRS",
	4: "SITTING",
	5: "STANDING",
	6: "LAYING",
}

// ActivityLabel translates an activity code into its label.
func ActivityLabel(code int) (string, error) {
	label, ok := activityLabels[code]
	if !ok {
		return "", errors.NewUnknownActivityError(code)
	}
	return label, nil
}
