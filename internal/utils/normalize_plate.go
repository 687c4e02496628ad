package utils

import "strings"

// NormalizePlate canonicalizes a plate number: whitespace and dashes removed,
// upper-cased. Apprehension records and vehicle lookups match on this form.
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
