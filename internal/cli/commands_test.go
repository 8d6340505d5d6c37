package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"studyquiz/internal/question"
	"studyquiz/internal/testutil"
)

const invalidLecture = `{"lecture": "", "questions": [{"question": "Q", "options": ["a", "b", "c", "d"], "correct_answer": 4}]}`

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLecture(t, dir, "lecture1", testutil.NumberedLecture("Intro", 4))
	testutil.WriteFile(t, dir, "broken.json", invalidLecture)

	var out, errOut bytes.Buffer
	code := Run([]string{"list", "--dir", dir}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	output := out.String()
	if !strings.Contains(output, "lecture1") || !strings.Contains(output, "4 questions") {
		t.Fatalf("expected lecture summary, got %q", output)
	}
	if !strings.Contains(output, "Intro (Fixtures)") {
		t.Fatalf("expected lecture title and topic, got %q", output)
	}
	if !strings.Contains(output, "broken") || !strings.Contains(output, "invalid") {
		t.Fatalf("expected invalid file marker, got %q", output)
	}
}

func TestValidateCommandOK(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLecture(t, dir, "lecture1", testutil.NumberedLecture("Intro", 2))

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--dir", dir}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "lecture1: OK (2 questions)") {
		t.Fatalf("expected per-file status, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Questions OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

func TestValidateCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLecture(t, dir, "lecture1", testutil.NumberedLecture("Intro", 2))
	testutil.WriteFile(t, dir, "broken.json", invalidLecture)

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--dir", dir}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	stderr := errOut.String()
	for _, want := range []string{"broken: invalid", "lecture:", "questions[0].correct_answer:"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("expected %q in stderr, got %q", want, stderr)
		}
	}
	if strings.Contains(out.String(), "Questions OK") {
		t.Fatalf("did not expect success message, got %q", out.String())
	}
}

func TestValidateMissingDirectory(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--dir", filepath.Join(t.TempDir(), "nope")}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
}

func TestShuffleCommand(t *testing.T) {
	dir := t.TempDir()
	lecture := testutil.NumberedLecture("Intro", 8)
	for i := range lecture.Questions {
		lecture.Questions[i].Options = []string{"w", "x", "y", "z"}
	}
	path := testutil.WriteLecture(t, dir, "lecture1", lecture)
	before, err := question.LoadSet(path)
	if err != nil {
		t.Fatalf("load before: %v", err)
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"shuffle", "--dir", dir, "--seed", "11"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	output := out.String()
	if !strings.Contains(output, "Found 1 lecture files to process") {
		t.Fatalf("expected file count, got %q", output)
	}
	if !strings.Contains(output, "Done! All answers have been shuffled.") {
		t.Fatalf("expected completion message, got %q", output)
	}

	after, err := question.LoadSet(path)
	if err != nil {
		t.Fatalf("load after: %v", err)
	}
	if len(after.Questions) != len(before.Questions) {
		t.Fatalf("expected %d questions, got %d", len(before.Questions), len(after.Questions))
	}
	for i, q := range after.Questions {
		if q.CorrectOption() != before.Questions[i].CorrectOption() {
			t.Fatalf("question %d: correct option changed from %q to %q", i, before.Questions[i].CorrectOption(), q.CorrectOption())
		}
	}
}

func TestShuffleUnknownLecture(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLecture(t, dir, "lecture1", testutil.NumberedLecture("Intro", 1))

	var out, errOut bytes.Buffer
	code := Run([]string{"shuffle", "--dir", dir, "missing"}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Skipping missing") {
		t.Fatalf("expected skip message, got %q", errOut.String())
	}
}
