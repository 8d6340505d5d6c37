package live

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 60

type optionState int

const (
	optionIdle optionState = iota
	optionCursor
	optionChosen
)

// renderTitle renders a ruled header line.
func renderTitle(title string, noColor bool) string {
	rule := strings.Repeat("=", ruleWidth)
	return rule + "\n" + stylize(title, noColor, lipgloss.Color("33")) + "\n" + rule + "\n"
}

// renderOption renders one numbered option with its cursor marker.
func renderOption(index int, text string, state optionState, noColor bool) string {
	label := fmtInt(index+1) + ". " + text
	switch state {
	case optionCursor:
		return stylizeBold("> "+label, noColor, lipgloss.Color("212"))
	case optionChosen:
		return stylizeBold("* "+label, noColor, lipgloss.Color("39"))
	default:
		return "  " + label
	}
}

// wrapText wraps text to width when the terminal size is known.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
