package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 60

// RenderSummary writes the final score block.
func RenderSummary(w io.Writer, summary Summary, noColor bool) {
	title := "QUIZ COMPLETE!"
	if summary.Quit {
		title = "QUIZ ENDED EARLY"
	}
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", rule, stylize(title, noColor, lipgloss.Color("33")), rule)
	fmt.Fprintf(w, "Final Score: %s\n", formatScore(summary.Correct, summary.Total, summary.Percentage))
	fmt.Fprintln(w, stylize(Verdict(summary.Band), noColor, bandColor(summary.Band)))
	if summary.Quit {
		fmt.Fprintln(w, stylize(fmt.Sprintf("Answered %d of %d questions before quitting.", summary.Total, summary.Planned), noColor, lipgloss.Color("244")))
	}
	if summary.Missed > 0 {
		fmt.Fprintln(w, stylize(fmt.Sprintf("Missed: %d", summary.Missed), noColor, lipgloss.Color("244")))
	}
	fmt.Fprintln(w)
}

// bandColor selects a color for a verdict band.
func bandColor(band Band) lipgloss.Color {
	switch band {
	case BandExcellent:
		return lipgloss.Color("42")
	case BandGreat:
		return lipgloss.Color("39")
	case BandGood:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("196")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
