package util

import "fmt"

// FormatSeconds renders a duration in seconds as "H hrs M mins". Negative
// values are clamped to zero.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	return fmt.Sprintf("%d hrs %d mins", hours, minutes)
}

// FormatPercent renders part/whole as a one-decimal percentage.
func FormatPercent(part, whole float64) string {
	if whole <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", part/whole*100)
}
