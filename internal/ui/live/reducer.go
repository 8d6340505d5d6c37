package live

import (
	"fmt"

	"studyquiz/internal/session"
)

// Reduce applies a question event to the feedback state.
func Reduce(state State, event session.Event) State {
	if event.Planned > 0 {
		state.Planned = event.Planned
	}
	switch event.Type {
	case session.EventCorrect:
		state.Answered = event.Answered
		state.Correct++
	case session.EventIncorrect:
		state.Answered = event.Answered
		state.Incorrect++
	case session.EventQuit:
		state.Quit = true
	}
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// formatLastEvent summarizes an event for the state's last-event line.
func formatLastEvent(event session.Event) string {
	switch event.Type {
	case session.EventPresented:
		return fmt.Sprintf("Q%d presented", event.Index+1)
	case session.EventCorrect:
		return fmt.Sprintf("Q%d correct", event.Index+1)
	case session.EventIncorrect:
		return fmt.Sprintf("Q%d incorrect (chose %d, answer %d)", event.Index+1, event.Chosen+1, event.Correct+1)
	case session.EventQuit:
		return fmt.Sprintf("quit at Q%d", event.Index+1)
	default:
		return ""
	}
}
