package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"studyquiz/internal/session"
)

const ruleWidth = 60

// defaultLabel names the input when a prompt carries no label.
const defaultLabel = "Select"

// Presenter reads numbered answers line by line and implements session.Presenter.
// EOF on input is treated as a quit.
type Presenter struct {
	out   io.Writer
	lines <-chan lineResult
	start func()
}

type lineResult struct {
	line string
	err  error
}

// NewPresenter builds a line-based presenter over in and out.
func NewPresenter(in io.Reader, out io.Writer) *Presenter {
	lines := make(chan lineResult)
	var once sync.Once
	reader := bufio.NewReader(in)
	return &Presenter{
		out:   out,
		lines: lines,
		start: func() {
			once.Do(func() { go readLines(reader, lines) })
		},
	}
}

// Choose prints the prompt with numbered options and reads a selection.
func (p *Presenter) Choose(ctx context.Context, prompt session.Prompt) (int, error) {
	if len(prompt.Options) == 0 {
		return 0, fmt.Errorf("prompt %q has no options", prompt.Title)
	}
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.out, "\n%s\n%s\n%s\n", rule, prompt.Title, rule)
	if prompt.Body != "" {
		fmt.Fprintf(p.out, "\n%s\n", prompt.Body)
	}
	fmt.Fprintln(p.out)
	for i, option := range prompt.Options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
	}
	label := prompt.Label
	if label == "" {
		label = defaultLabel
	}
	for {
		fmt.Fprintf(p.out, "\n%s (1-%d, q to quit): ", label, len(prompt.Options))
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "q" || line == "quit" {
			return 0, session.ErrQuit
		}
		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if choice < 1 || choice > len(prompt.Options) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(prompt.Options))
			continue
		}
		return choice - 1, nil
	}
}

// Pause waits for a line. Entering q quits.
func (p *Presenter) Pause(ctx context.Context, message string) error {
	fmt.Fprintf(p.out, "\n%s ", message)
	line, err := p.readLine(ctx)
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(line), "q") {
		return session.ErrQuit
	}
	return nil
}

// readLine waits for the next input line or context cancellation.
func (p *Presenter) readLine(ctx context.Context) (string, error) {
	p.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result, ok := <-p.lines:
		if !ok {
			return "", session.ErrQuit
		}
		if result.err != nil {
			return "", fmt.Errorf("read input: %w", result.err)
		}
		return result.line, nil
	}
}

// readLines feeds lines to the channel until EOF or a read error.
func readLines(reader *bufio.Reader, lines chan<- lineResult) {
	defer close(lines)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				if line != "" {
					lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
				}
				return
			}
			lines <- lineResult{err: err}
			return
		}
		lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
	}
}
