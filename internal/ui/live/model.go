package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/session"
)

// ChoiceModel is a single-choice prompt navigated with the arrow keys.
type ChoiceModel struct {
	prompt  session.Prompt
	keys    keyMap
	cursor  int
	chosen  int
	done    bool
	quit    bool
	width   int
	noColor bool
}

// NewChoiceModel builds a prompt model with the cursor on the first option.
func NewChoiceModel(prompt session.Prompt, opts Options) ChoiceModel {
	return ChoiceModel{
		prompt:  prompt,
		keys:    defaultKeys(),
		chosen:  -1,
		noColor: opts.NoColor,
	}
}

// Init has no startup command.
func (m ChoiceModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor, selects, or quits.
func (m ChoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if m.done || m.quit {
			return m, nil
		}
		switch {
		case key.Matches(typed, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(typed, m.keys.Up):
			m.cursor = wrapIndex(m.cursor-1, len(m.prompt.Options))
		case key.Matches(typed, m.keys.Down):
			m.cursor = wrapIndex(m.cursor+1, len(m.prompt.Options))
		case key.Matches(typed, m.keys.Select):
			if len(m.prompt.Options) == 0 {
				return m, nil
			}
			m.chosen = m.cursor
			m.done = true
			return m, tea.Quit
		default:
			if index, ok := digitIndex(typed.String(), len(m.prompt.Options)); ok {
				m.cursor = index
				m.chosen = index
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the prompt. Once answered it renders the final transcript.
func (m ChoiceModel) View() string {
	var b strings.Builder
	b.WriteString(renderTitle(m.prompt.Title, m.noColor))
	if m.prompt.Body != "" {
		b.WriteString("\n")
		b.WriteString(wrapText(m.prompt.Body, m.width))
		b.WriteString("\n\n")
	}
	for i, option := range m.prompt.Options {
		b.WriteString(renderOption(i, option, m.optionState(i), m.noColor))
		b.WriteString("\n")
	}
	switch {
	case m.quit:
		b.WriteString(stylize("\nQuit.", m.noColor, lipgloss.Color("244")))
		b.WriteString("\n")
	case !m.done:
		b.WriteString("\n")
		b.WriteString(stylize(m.keys.helpLine(len(m.prompt.Options)), m.noColor, lipgloss.Color("241")))
		b.WriteString("\n")
	}
	return b.String()
}

// Chosen returns the selected index and whether a selection was made.
func (m ChoiceModel) Chosen() (int, bool) {
	return m.chosen, m.done
}

// Quit reports whether the user asked to quit.
func (m ChoiceModel) Quit() bool {
	return m.quit
}

func (m ChoiceModel) optionState(index int) optionState {
	switch {
	case m.done && index == m.chosen:
		return optionChosen
	case !m.done && !m.quit && index == m.cursor:
		return optionCursor
	default:
		return optionIdle
	}
}

// wrapIndex keeps the cursor within [0, n) and wraps at the ends.
func wrapIndex(index, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index % n) + n) % n
}

// digitIndex maps "1".."9" to a zero-based option index.
func digitIndex(keyName string, options int) (int, bool) {
	if len(keyName) != 1 || keyName[0] < '1' || keyName[0] > '9' {
		return 0, false
	}
	index := int(keyName[0] - '1')
	if index >= options {
		return 0, false
	}
	return index, true
}
