package utils

import "time"

// FormatBoolean renders a flag for display. Without labels it yields
// "Yes"/"No"; callers may pass exactly two labels (true-label, false-label).
func FormatBoolean(value bool, labels ...string) string {
	trueLabel, falseLabel := "Yes", "No"
	if len(labels) >= 2 {
		trueLabel, falseLabel = labels[0], labels[1]
	}
	if value {
		return trueLabel
	}
	return falseLabel
}

// FormatDate renders a date as yyyy-MM-dd, the format every export uses.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTestResult maps the tri-state latest test result for reports.
func FormatTestResult(result *bool) string {
	if result == nil {
		return "Not Tested"
	}
	if *result {
		return "Passed"
	}
	return "Failed"
}
