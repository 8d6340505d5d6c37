package report

import "studyquiz/internal/session"

// Band is a qualitative verdict for a score percentage.
type Band string

const (
	BandExcellent   Band = "excellent"
	BandGreat       Band = "great"
	BandGood        Band = "good"
	BandNeedsReview Band = "needs-review"
)

// Thresholds are the minimum percentages for each band, highest first.
type Thresholds struct {
	Excellent float64
	Great     float64
	Good      float64
}

// DefaultThresholds grades at 90, 75 and 60 percent.
var DefaultThresholds = Thresholds{Excellent: 90, Great: 75, Good: 60}

// Summary is the final score of a session.
type Summary struct {
	SessionID  string
	Planned    int
	Total      int
	Correct    int
	Percentage float64
	Band       Band
	Quit       bool
	Missed     int
}

// Percentage returns correct/total as a percentage, or 0 when total is 0.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Grade maps a percentage to its band.
func Grade(percentage float64, thresholds Thresholds) Band {
	switch {
	case percentage >= thresholds.Excellent:
		return BandExcellent
	case percentage >= thresholds.Great:
		return BandGreat
	case percentage >= thresholds.Good:
		return BandGood
	default:
		return BandNeedsReview
	}
}

// Verdict returns the message shown for a band.
func Verdict(band Band) string {
	switch band {
	case BandExcellent:
		return "Excellent work!"
	case BandGreat:
		return "Great job!"
	case BandGood:
		return "Good effort!"
	default:
		return "Keep studying!"
	}
}

// Summarize computes the final summary of a session result.
func Summarize(result session.Result, thresholds Thresholds) Summary {
	percentage := Percentage(result.CorrectCount, result.Total)
	return Summary{
		SessionID:  result.ID,
		Planned:    result.Planned,
		Total:      result.Total,
		Correct:    result.CorrectCount,
		Percentage: percentage,
		Band:       Grade(percentage, thresholds),
		Quit:       result.Quit,
		Missed:     len(result.WrongAnswers),
	}
}
