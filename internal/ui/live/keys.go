package live

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the choice prompt.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpLine renders the short key help for the choice prompt.
func (k keyMap) helpLine(options int) string {
	parts := []key.Binding{k.Up, k.Down, k.Select}
	line := ""
	for _, binding := range parts {
		help := binding.Help()
		line += help.Key + " " + help.Desc + " • "
	}
	if options > 1 && options <= 9 {
		line += "1-" + fmtInt(options) + " jump • "
	}
	quit := k.Quit.Help()
	return line + quit.Key + " " + quit.Desc
}
