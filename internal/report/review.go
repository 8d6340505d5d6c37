package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/session"
)

const reviewYes = 0

// Review offers to walk through missed questions. Quitting at any prompt ends
// the review without an error.
func Review(ctx context.Context, presenter session.Presenter, w io.Writer, wrong []session.WrongAnswer, noColor bool) error {
	if len(wrong) == 0 {
		return nil
	}
	choice, err := presenter.Choose(ctx, session.Prompt{
		Title:   "Review",
		Body:    fmt.Sprintf("You missed %d %s. Review %s now?", len(wrong), plural(len(wrong), "question", "questions"), plural(len(wrong), "it", "them")),
		Options: []string{"Yes", "No"},
		Label:   "Review",
	})
	if err != nil {
		if session.IsQuit(err) {
			return nil
		}
		return fmt.Errorf("review prompt: %w", err)
	}
	if choice != reviewYes {
		return nil
	}

	for i, item := range wrong {
		RenderReviewItem(w, i, len(wrong), item, noColor)
		if i == len(wrong)-1 {
			break
		}
		if err := presenter.Pause(ctx, session.PauseMessage); err != nil {
			if session.IsQuit(err) {
				return nil
			}
			return fmt.Errorf("review pause: %w", err)
		}
	}
	fmt.Fprintln(w, stylize("Review complete.", noColor, lipgloss.Color("244")))
	return nil
}

// RenderReviewItem writes one missed question with the chosen and correct options.
func RenderReviewItem(w io.Writer, index, total int, item session.WrongAnswer, noColor bool) {
	q := item.Question
	rule := strings.Repeat("-", ruleWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, stylize(fmt.Sprintf("Missed %d/%d", index+1, total), noColor, lipgloss.Color("33")), rule)
	if q.Lecture != "" {
		fmt.Fprintln(w, stylize(q.Lecture, noColor, lipgloss.Color("240")))
	}
	fmt.Fprintf(w, "\n%s\n\n", q.Text)
	fmt.Fprintf(w, "Your answer:    %s\n", stylize(formatOption(item.Chosen, q.Option(item.Chosen)), noColor, lipgloss.Color("196")))
	fmt.Fprintf(w, "Correct answer: %s\n", stylize(formatOption(q.Correct, q.CorrectOption()), noColor, lipgloss.Color("42")))
	if q.Explanation != "" {
		fmt.Fprintf(w, "\nExplanation: %s\n", q.Explanation)
	}
}

func plural(count int, one, many string) string {
	if count == 1 {
		return one
	}
	return many
}
