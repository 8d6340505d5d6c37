package testutil

import (
	"context"

	"studyquiz/internal/session"
)

// Step is one scripted response to a Choose call.
type Step struct {
	Choice int
	Err    error
}

// ScriptedPresenter replays canned selections instead of reading a terminal.
// When Answer is set it decides every Choose call; otherwise Steps are consumed
// in order and an exhausted script returns session.ErrQuit.
type ScriptedPresenter struct {
	Steps     []Step
	Answer    func(prompt session.Prompt) (int, error)
	PauseErrs []error

	Prompts []session.Prompt
	Pauses  []string
}

// Choose records the prompt and returns the next scripted response.
func (p *ScriptedPresenter) Choose(ctx context.Context, prompt session.Prompt) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.Prompts = append(p.Prompts, prompt)
	if p.Answer != nil {
		return p.Answer(prompt)
	}
	if len(p.Steps) == 0 {
		return 0, session.ErrQuit
	}
	step := p.Steps[0]
	p.Steps = p.Steps[1:]
	return step.Choice, step.Err
}

// Pause records the message and returns the scripted error for this pause, if any.
func (p *ScriptedPresenter) Pause(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	index := len(p.Pauses)
	p.Pauses = append(p.Pauses, message)
	if index < len(p.PauseErrs) {
		return p.PauseErrs[index]
	}
	return nil
}
