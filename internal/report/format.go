package report

import "fmt"

// formatScore renders "correct/total (pct%)".
func formatScore(correct, total int, percentage float64) string {
	return fmt.Sprintf("%d/%d (%s%%)", correct, total, formatPercentage(percentage))
}

// formatPercentage renders a percentage with one decimal place.
func formatPercentage(percentage float64) string {
	return fmt.Sprintf("%.1f", percentage)
}

// formatOption renders a 1-based option label.
func formatOption(index int, text string) string {
	return fmt.Sprintf("%d. %s", index+1, text)
}
