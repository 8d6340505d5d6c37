package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"studyquiz/internal/session"
)

// Options configures the live presenter and feedback.
type Options struct {
	NoColor bool
}

// Presenter runs a Bubble Tea program per prompt and implements session.Presenter.
type Presenter struct {
	in   io.Reader
	out  io.Writer
	opts Options
}

// NewPresenter builds a presenter reading keys from in and drawing to out.
func NewPresenter(in io.Reader, out io.Writer, opts Options) *Presenter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Presenter{in: in, out: out, opts: opts}
}

// Choose shows a single-choice prompt and returns the selected index.
func (p *Presenter) Choose(ctx context.Context, prompt session.Prompt) (int, error) {
	if len(prompt.Options) == 0 {
		return 0, fmt.Errorf("prompt %q has no options", prompt.Title)
	}
	final, err := p.run(ctx, NewChoiceModel(prompt, p.opts))
	if err != nil {
		return 0, err
	}
	model, ok := final.(ChoiceModel)
	if !ok {
		return 0, fmt.Errorf("unexpected prompt model %T", final)
	}
	if model.Quit() {
		return 0, session.ErrQuit
	}
	chosen, done := model.Chosen()
	if !done {
		return 0, session.ErrQuit
	}
	return chosen, nil
}

// Pause waits for any key.
func (p *Presenter) Pause(ctx context.Context, message string) error {
	final, err := p.run(ctx, NewPauseModel(message, p.opts))
	if err != nil {
		return err
	}
	if model, ok := final.(PauseModel); ok && model.Quit() {
		return session.ErrQuit
	}
	return nil
}

// run executes a model until it quits, mapping interrupts and cancellation.
func (p *Presenter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, session.ErrQuit
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
