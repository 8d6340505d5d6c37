package session

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"studyquiz/internal/question"
)

// PauseMessage is shown between questions.
const PauseMessage = "Press any key to continue..."

// AnswerLabel labels the input of question prompts.
const AnswerLabel = "Your answer"

// Controller drives one quiz attempt over a list of questions.
type Controller struct {
	Presenter Presenter
	Observer  Observer
	// Rand orders questions and options. Nil uses the package-level source.
	Rand *rand.Rand
	// ShuffleOptions permutes each question's options before it is shown.
	ShuffleOptions bool
	// NewID overrides session id generation.
	NewID func() string
}

// Run shuffles the questions and presents them one at a time. A quit signal or
// a cancelled context ends the session early with Quit set and a nil error.
func (c *Controller) Run(ctx context.Context, questions []question.Question) (Result, error) {
	if c.Presenter == nil {
		return Result{}, fmt.Errorf("session presenter is nil")
	}
	observer := c.Observer
	if observer == nil {
		observer = NoopObserver{}
	}

	ordered := append([]question.Question(nil), questions...)
	question.Shuffle(ordered, c.Rand)

	result := Result{ID: c.newID(), Planned: len(ordered)}
	observer.OnSessionStart(result.ID, result.Planned)

	for i, q := range ordered {
		if c.ShuffleOptions {
			q = question.ShuffleOptions(q, c.Rand)
		}
		event := Event{Index: i, Planned: result.Planned, Question: q, Correct: q.Correct}
		if ctx.Err() != nil {
			result.Quit = true
			break
		}

		event.Type = EventPresented
		event.Answered = result.Total
		observer.OnQuestionEvent(event)

		chosen, err := c.Presenter.Choose(ctx, Prompt{
			Title:   fmt.Sprintf("Question %d/%d", i+1, result.Planned),
			Body:    q.Text,
			Options: q.Options,
			Label:   AnswerLabel,
		})
		if err != nil {
			if IsQuit(err) {
				event.Type = EventQuit
				observer.OnQuestionEvent(event)
				result.Quit = true
				break
			}
			observer.OnSessionEnd(result)
			return result, fmt.Errorf("present question %d: %w", i+1, err)
		}
		if chosen < 0 || chosen >= len(q.Options) {
			observer.OnSessionEnd(result)
			return result, fmt.Errorf("question %d: selection %d out of range", i+1, chosen)
		}

		var correct bool
		result, correct = Score(result, q, chosen)
		event.Chosen = chosen
		event.Answered = result.Total
		event.Type = EventIncorrect
		if correct {
			event.Type = EventCorrect
		}
		observer.OnQuestionEvent(event)

		if i == len(ordered)-1 {
			break
		}
		if err := c.Presenter.Pause(ctx, PauseMessage); err != nil {
			if IsQuit(err) {
				result.Quit = true
				break
			}
			observer.OnSessionEnd(result)
			return result, fmt.Errorf("pause after question %d: %w", i+1, err)
		}
	}

	observer.OnSessionEnd(result)
	return result, nil
}

// Score records an answer against q and reports whether it was correct.
func Score(result Result, q question.Question, chosen int) (Result, bool) {
	result.Total++
	if chosen == q.Correct {
		result.CorrectCount++
		return result, true
	}
	result.WrongAnswers = append(result.WrongAnswers, WrongAnswer{Question: q, Chosen: chosen})
	return result, false
}

func (c *Controller) newID() string {
	if c.NewID != nil {
		return c.NewID()
	}
	return uuid.NewString()
}
