package live

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/session"
)

// Feedback prints per-question feedback and implements session.Observer.
type Feedback struct {
	out     io.Writer
	noColor bool
	bar     progress.Model
	state   State
}

// NewFeedback builds a feedback observer writing to out.
func NewFeedback(out io.Writer, opts Options) *Feedback {
	if out == nil {
		out = os.Stdout
	}
	return &Feedback{out: out, noColor: opts.NoColor, bar: newProgressBar(opts.NoColor)}
}

// State returns the running feedback state.
func (f *Feedback) State() State {
	return f.state
}

// OnSessionStart announces the session.
func (f *Feedback) OnSessionStart(id string, planned int) {
	f.state = State{SessionID: id, Planned: planned}
	fmt.Fprintf(f.out, "\n%s\n\n", stylizeBold(fmt.Sprintf("Starting quiz with %d %s!", planned, pluralQuestions(planned)), f.noColor, lipgloss.Color("33")))
}

// OnQuestionEvent prints feedback for answered questions.
func (f *Feedback) OnQuestionEvent(event session.Event) {
	f.state = Reduce(f.state, event)
	switch event.Type {
	case session.EventCorrect:
		fmt.Fprintf(f.out, "\n%s\n", stylizeBold("✓ Correct!", f.noColor, lipgloss.Color("42")))
	case session.EventIncorrect:
		message := fmt.Sprintf("✗ Incorrect. The correct answer was option %d: %s", event.Correct+1, event.Question.CorrectOption())
		fmt.Fprintf(f.out, "\n%s\n", stylizeBold(message, f.noColor, lipgloss.Color("196")))
	case session.EventQuit:
		fmt.Fprintf(f.out, "\n%s\n", stylize("Quiz ended by user.", f.noColor, lipgloss.Color("244")))
		return
	default:
		return
	}
	if event.Question.Explanation != "" {
		fmt.Fprintf(f.out, "\nExplanation: %s\n", event.Question.Explanation)
	}
	fmt.Fprintf(f.out, "\n%s\n", formatScore(f.state.Correct, f.state.Answered))
	fmt.Fprintf(f.out, "%s\n\n", formatProgress(f.bar, f.state.Answered, f.state.Planned))
}

// OnSessionEnd records the final quit flag.
func (f *Feedback) OnSessionEnd(result session.Result) {
	f.state.Quit = result.Quit
}

func pluralQuestions(count int) string {
	if count == 1 {
		return "question"
	}
	return "questions"
}
