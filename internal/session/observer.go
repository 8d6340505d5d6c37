package session

import "studyquiz/internal/question"

// EventType identifies a question status update for observers.
type EventType string

const (
	// EventPresented marks a question shown to the user.
	EventPresented EventType = "presented"
	// EventCorrect marks a correct answer.
	EventCorrect EventType = "correct"
	// EventIncorrect marks an incorrect answer.
	EventIncorrect EventType = "incorrect"
	// EventQuit marks a quit while the question was pending.
	EventQuit EventType = "quit"
)

// Event carries a single status update for a question.
type Event struct {
	Type     EventType
	Index    int
	Planned  int
	Question question.Question
	Chosen   int
	Correct  int
	Answered int
}

// Observer receives session lifecycle events for feedback or logging.
type Observer interface {
	// OnSessionStart signals the start of a session.
	OnSessionStart(id string, planned int)
	// OnQuestionEvent delivers a question status update.
	OnQuestionEvent(event Event)
	// OnSessionEnd signals session completion.
	OnSessionEnd(result Result)
}

// NoopObserver ignores every event.
type NoopObserver struct{}

func (NoopObserver) OnSessionStart(string, int) {}
func (NoopObserver) OnQuestionEvent(Event) {}
func (NoopObserver) OnSessionEnd(Result) {}

// Observers fans events out to several observers in order.
type Observers []Observer

// OnSessionStart forwards to every observer.
func (list Observers) OnSessionStart(id string, planned int) {
	for _, observer := range list {
		observer.OnSessionStart(id, planned)
	}
}

// OnQuestionEvent forwards to every observer.
func (list Observers) OnQuestionEvent(event Event) {
	for _, observer := range list {
		observer.OnQuestionEvent(event)
	}
}

// OnSessionEnd forwards to every observer.
func (list Observers) OnSessionEnd(result Result) {
	for _, observer := range list {
		observer.OnSessionEnd(result)
	}
}
