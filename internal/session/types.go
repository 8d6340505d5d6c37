package session

import (
	"context"
	"errors"

	"studyquiz/internal/question"
)

// ErrQuit signals that the user asked to end the session. It is a control
// signal, not a failure.
var ErrQuit = errors.New("quit requested")

// Prompt is a single-choice question put to the user.
type Prompt struct {
	Title   string
	Body    string
	Options []string
	// Label names the input in line-based prompts, e.g. "Your answer".
	Label string
}

// Presenter renders prompts and captures the user's selection.
type Presenter interface {
	// Choose shows a prompt and returns the selected option index, or ErrQuit.
	Choose(ctx context.Context, prompt Prompt) (int, error)
	// Pause waits for the user to continue, or returns ErrQuit.
	Pause(ctx context.Context, message string) error
}

// WrongAnswer records a missed question and the option the user picked.
type WrongAnswer struct {
	Question question.Question
	Chosen   int
}

// Result is the outcome of one quiz attempt.
type Result struct {
	ID           string
	Planned      int
	Total        int
	CorrectCount int
	WrongAnswers []WrongAnswer
	Quit         bool
}

// IsQuit reports whether err is the quit signal or a cancelled context.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled)
}
