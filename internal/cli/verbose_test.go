package cli

import (
	"bytes"
	"testing"

	"studyquiz/internal/session"
)

// TestVerboseLoggerDisabled verifies nothing is written without --verbose.
func TestVerboseLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	newVerboseLogger(false, &buf, false).logf(styleInfo, "questions directory: %s", "q")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

// TestVerboseLoggerPlainOutput verifies unstyled lines for no-color and non-terminal writers.
func TestVerboseLoggerPlainOutput(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	for name, noColor := range map[string]bool{"no-color": true, "non-terminal": false} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			newVerboseLogger(true, &buf, noColor).logf(styleMetrics, "pooled %d questions", 10)
			if got, want := buf.String(), "[verbose] pooled 10 questions\n"; got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}
}

// TestPaletteForHonoursOptOuts verifies env opt-outs disable styling.
func TestPaletteForHonoursOptOuts(t *testing.T) {
	cases := map[string][2]string{
		"NO_COLOR":   {"NO_COLOR", "1"},
		"TERM dumb":  {"TERM", "dumb"},
		"CLICOLOR 0": {"CLICOLOR", "0"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			if paletteFor(&bytes.Buffer{}, false).enabled {
				t.Fatalf("expected styling disabled")
			}
		})
	}
	if paletteFor(nil, false).enabled {
		t.Fatalf("expected styling disabled for nil writer")
	}
}

// TestVerboseObserverLogsAnswers verifies per-question events reach the log.
func TestVerboseObserverLogsAnswers(t *testing.T) {
	var buf bytes.Buffer
	observer := verboseObserver{logger: newVerboseLogger(true, &buf, true)}
	observer.OnSessionStart("abc", 3)
	observer.OnQuestionEvent(session.Event{Type: session.EventIncorrect, Index: 1, Chosen: 0, Correct: 2})
	observer.OnQuestionEvent(session.Event{Type: session.EventQuit, Index: 2, Answered: 2})
	want := "[verbose] session abc started: 3 questions\n" +
		"[verbose] Q2 incorrect (chose 1, answer 3)\n" +
		"[verbose] quit at Q3 after 2 answers\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}
