//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"sort"
	"strings"
)

func (s *featureState) theScoreIs(correct, total int) error {
	if s.result.CorrectCount != correct || s.result.Total != total {
		return fmt.Errorf("expected score %d/%d, got %d/%d", correct, total, s.result.CorrectCount, s.result.Total)
	}
	if s.result.CorrectCount > s.result.Total {
		return fmt.Errorf("correct count %d exceeds total %d", s.result.CorrectCount, s.result.Total)
	}
	return nil
}

// theMissedQuestionsAre compares missed question texts, ignoring order.
func (s *featureState) theMissedQuestionsAre(expected string) error {
	var want []string
	for _, text := range strings.Split(expected, ",") {
		if text = strings.TrimSpace(text); text != "" {
			want = append(want, text)
		}
	}
	var got []string
	for _, wrong := range s.result.WrongAnswers {
		got = append(got, wrong.Question.Text)
	}
	sort.Strings(want)
	sort.Strings(got)
	if strings.Join(want, "|") != strings.Join(got, "|") {
		return fmt.Errorf("expected missed questions %v, got %v", want, got)
	}
	return nil
}

func (s *featureState) theSessionEndedEarly() error {
	if !s.result.Quit {
		return fmt.Errorf("expected session to end early")
	}
	return nil
}

// theSessionCoveredDistinctQuestions checks every lecture question was presented once.
func (s *featureState) theSessionCoveredDistinctQuestions(count int) error {
	seen := map[string]bool{}
	for _, prompt := range s.presenter.Prompts {
		if seen[prompt.Body] {
			return fmt.Errorf("question %q presented twice", prompt.Body)
		}
		seen[prompt.Body] = true
	}
	if len(seen) != count {
		return fmt.Errorf("expected %d distinct questions, got %d", count, len(seen))
	}
	for _, lecture := range s.lectures {
		for _, q := range lecture.Questions {
			if !seen[q.Question] {
				return fmt.Errorf("question %q missing from session", q.Question)
			}
		}
	}
	return nil
}

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}
