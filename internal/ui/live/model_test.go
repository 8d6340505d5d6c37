package live

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studyquiz/internal/session"
	"studyquiz/internal/testutil"
)

func testPrompt() session.Prompt {
	return session.Prompt{
		Title:   "Question 1/3",
		Body:    "Which port does HTTPS use?",
		Options: []string{"21", "80", "443", "8080"},
	}
}

func press(m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestChoiceModelArrowNavigation verifies arrows move the cursor and enter selects.
func TestChoiceModelArrowNavigation(t *testing.T) {
	model := NewChoiceModel(testPrompt(), Options{NoColor: true})
	final, cmd := press(model, keyType(tea.KeyDown), keyType(tea.KeyDown), keyType(tea.KeyUp), keyType(tea.KeyDown), keyType(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected quit command after selection")
	}
	chosen, done := final.(ChoiceModel).Chosen()
	if !done || chosen != 2 {
		t.Fatalf("expected option 2 chosen, got %d (done=%v)", chosen, done)
	}
}

// TestChoiceModelWrapsCursor verifies moving up from the first option wraps to the last.
func TestChoiceModelWrapsCursor(t *testing.T) {
	model := NewChoiceModel(testPrompt(), Options{NoColor: true})
	final, _ := press(model, keyRune('k'), keyType(tea.KeyEnter))
	chosen, _ := final.(ChoiceModel).Chosen()
	if chosen != 3 {
		t.Fatalf("expected wrap to last option, got %d", chosen)
	}
}

// TestChoiceModelDigitShortcut verifies number keys select directly.
func TestChoiceModelDigitShortcut(t *testing.T) {
	model := NewChoiceModel(testPrompt(), Options{NoColor: true})
	final, _ := press(model, keyRune('4'))
	chosen, done := final.(ChoiceModel).Chosen()
	if !done || chosen != 3 {
		t.Fatalf("expected option 3 chosen, got %d", chosen)
	}
	unchanged, _ := press(model, keyRune('7'))
	if _, done := unchanged.(ChoiceModel).Chosen(); done {
		t.Fatalf("expected out-of-range digit to be ignored")
	}
}

// TestChoiceModelQuitKeys verifies q, esc and ctrl+c quit the prompt.
func TestChoiceModelQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRune('q'), keyType(tea.KeyEsc), keyType(tea.KeyCtrlC)} {
		model := NewChoiceModel(testPrompt(), Options{NoColor: true})
		final, cmd := press(model, k)
		if cmd == nil || !final.(ChoiceModel).Quit() {
			t.Fatalf("expected %q to quit", k.String())
		}
		if !strings.Contains(final.View(), "Quit.") {
			t.Fatalf("expected quit transcript, got:\n%s", final.View())
		}
	}
}

// TestChoiceModelView verifies the prompt renders the cursor and help line.
func TestChoiceModelView(t *testing.T) {
	model := NewChoiceModel(testPrompt(), Options{NoColor: true})
	view := model.View()
	for _, want := range []string{"Question 1/3", "Which port does HTTPS use?", "> 1. 21", "  3. 443", "enter select", "1-4 jump"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	final, _ := press(model, keyRune('3'))
	answered := final.View()
	if !strings.Contains(answered, "* 3. 443") || strings.Contains(answered, "enter select") {
		t.Fatalf("unexpected answered view:\n%s", answered)
	}
}

// TestPauseModel verifies any key continues and ctrl+c quits.
func TestPauseModel(t *testing.T) {
	model := NewPauseModel(session.PauseMessage, Options{NoColor: true})
	if !strings.Contains(model.View(), session.PauseMessage) {
		t.Fatalf("expected pause message in view")
	}
	continued, cmd := press(model, keyRune('x'))
	if cmd == nil || continued.(PauseModel).Quit() {
		t.Fatalf("expected key press to continue")
	}
	quit, _ := press(model, keyType(tea.KeyCtrlC))
	if !quit.(PauseModel).Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

// TestPresenterChooseFromInput verifies a full program run reads the selection from input.
func TestPresenterChooseFromInput(t *testing.T) {
	runWithTimeout(t, 3*time.Second, func() {
		var out bytes.Buffer
		presenter := NewPresenter(bytes.NewBufferString("3"), &out, Options{NoColor: true})
		chosen, err := presenter.Choose(testutil.Context(t, 3*time.Second), testPrompt())
		if err != nil {
			t.Errorf("choose: %v", err)
			return
		}
		if chosen != 2 {
			t.Errorf("expected option 2, got %d", chosen)
		}
	})
}

// TestPresenterQuitFromInput verifies q in the input stream is a quit signal.
func TestPresenterQuitFromInput(t *testing.T) {
	runWithTimeout(t, 3*time.Second, func() {
		presenter := NewPresenter(bytes.NewBufferString("q"), &bytes.Buffer{}, Options{NoColor: true})
		_, err := presenter.Choose(testutil.Context(t, 3*time.Second), testPrompt())
		if !errors.Is(err, session.ErrQuit) {
			t.Errorf("expected quit, got %v", err)
		}
	})
}

// TestPresenterRejectsEmptyPrompt verifies prompts need options.
func TestPresenterRejectsEmptyPrompt(t *testing.T) {
	presenter := NewPresenter(&bytes.Buffer{}, &bytes.Buffer{}, Options{NoColor: true})
	if _, err := presenter.Choose(testutil.Context(t, 0), session.Prompt{Title: "empty"}); err == nil {
		t.Fatalf("expected error for empty prompt")
	}
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout+time.Second)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
