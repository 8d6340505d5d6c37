package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
)

const progressWidth = 40

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatScore renders the running score line.
func formatScore(correct, answered int) string {
	return "Current Score: " + fmtInt(correct) + "/" + fmtInt(answered)
}

// formatProgress renders a progress bar for answered out of planned questions.
func formatProgress(bar progress.Model, answered, planned int) string {
	ratio := 0.0
	if planned > 0 {
		ratio = float64(answered) / float64(planned)
	}
	return bar.ViewAs(ratio) + " " + fmtInt(answered) + "/" + fmtInt(planned)
}

// newProgressBar builds the feedback progress bar.
func newProgressBar(noColor bool) progress.Model {
	if noColor {
		return progress.New(
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
			progress.WithFillCharacters('#', '-'),
		)
	}
	return progress.New(
		progress.WithWidth(progressWidth),
		progress.WithoutPercentage(),
		progress.WithDefaultGradient(),
	)
}
