package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/session"
)

const verbosePrefix = "[verbose]"

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleInfo
	styleMetrics
	styleError
)

// verboseLogger writes [verbose] diagnostic lines when enabled.
type verboseLogger struct {
	enabled bool
	writer  io.Writer
	palette verbosePalette
}

func newVerboseLogger(enabled bool, writer io.Writer, noColor bool) verboseLogger {
	return verboseLogger{enabled: enabled, writer: writer, palette: paletteFor(writer, noColor)}
}

func (l verboseLogger) logf(style verboseStyle, format string, args ...any) {
	if !l.enabled || l.writer == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "%s %s\n", l.palette.prefix(verbosePrefix), l.palette.apply(style, line))
}

// verbosePalette renders log lines with lipgloss styles bound to the log
// writer, so the colour profile is detected for that writer.
type verbosePalette struct {
	enabled bool
	dim     lipgloss.Style
	styles  map[verboseStyle]lipgloss.Style
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor || !shouldUseStyling(writer) {
		return verbosePalette{}
	}
	renderer := lipgloss.NewRenderer(writer)
	bold := func(color string) lipgloss.Style {
		return renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}
	return verbosePalette{
		enabled: true,
		dim:     renderer.NewStyle().Faint(true).Foreground(lipgloss.Color("244")),
		styles: map[verboseStyle]lipgloss.Style{
			styleInfo:    bold("33"),
			styleMetrics: bold("42"),
			styleError:   bold("196"),
		},
	}
}

// shouldUseStyling honours the opt-outs lipgloss does not check itself.
func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return !strings.EqualFold(os.Getenv("CLICOLOR"), "0")
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return p.dim.Render(text)
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	if styled, ok := p.styles[style]; ok {
		return styled.Render(text)
	}
	return text
}

// verboseObserver logs session events through the verbose logger.
type verboseObserver struct {
	logger verboseLogger
}

func (o verboseObserver) OnSessionStart(id string, planned int) {
	o.logger.logf(styleInfo, "session %s started: %d questions", id, planned)
}

func (o verboseObserver) OnQuestionEvent(event session.Event) {
	switch event.Type {
	case session.EventCorrect:
		o.logger.logf(styleMetrics, "Q%d correct (answer %d)", event.Index+1, event.Correct+1)
	case session.EventIncorrect:
		o.logger.logf(styleError, "Q%d incorrect (chose %d, answer %d)", event.Index+1, event.Chosen+1, event.Correct+1)
	case session.EventQuit:
		o.logger.logf(styleInfo, "quit at Q%d after %d answers", event.Index+1, event.Answered)
	}
}

func (o verboseObserver) OnSessionEnd(session.Result) {}
