package live

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PauseModel waits for any key. ctrl+c quits.
type PauseModel struct {
	message string
	done    bool
	quit    bool
	noColor bool
}

// NewPauseModel builds a pause prompt.
func NewPauseModel(message string, opts Options) PauseModel {
	return PauseModel{message: message, noColor: opts.NoColor}
}

// Init has no startup command.
func (m PauseModel) Init() tea.Cmd {
	return nil
}

// Update finishes on the first key press.
func (m PauseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	typed, ok := msg.(tea.KeyMsg)
	if !ok || m.done || m.quit {
		return m, nil
	}
	if typed.Type == tea.KeyCtrlC {
		m.quit = true
	} else {
		m.done = true
	}
	return m, tea.Quit
}

// View renders the message until a key is pressed.
func (m PauseModel) View() string {
	if m.done || m.quit {
		return ""
	}
	return stylize(m.message, m.noColor, lipgloss.Color("244")) + "\n"
}

// Quit reports whether the user asked to quit.
func (m PauseModel) Quit() bool {
	return m.quit
}
