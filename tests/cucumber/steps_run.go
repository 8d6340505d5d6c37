//go:build cucumber
// +build cucumber

package cucumber

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"studyquiz/internal/cli"
	"studyquiz/internal/question"
	"studyquiz/internal/session"
	"studyquiz/internal/testutil"
)

// aLectureWithQuestions writes a numbered fixture lecture.
func (s *featureState) aLectureWithQuestions(name string, count int) error {
	lecture := testutil.NumberedLecture(name, count)
	data, err := json.MarshalIndent(lecture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal lecture: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.questionsDir, name+".json"), data, 0o644); err != nil {
		return fmt.Errorf("write lecture: %w", err)
	}
	s.lectures[name] = lecture
	return nil
}

// anInvalidLectureFile writes a lecture whose answer index is out of range.
func (s *featureState) anInvalidLectureFile(name string) error {
	content := `{"lecture": "Broken", "questions": [{"question": "Q", "options": ["a", "b", "c", "d"], "correct_answer": 7}]}`
	if err := os.WriteFile(filepath.Join(s.questionsDir, name+".json"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write lecture: %w", err)
	}
	return nil
}

func (s *featureState) iTakeTheQuizCorrectly(name string) error {
	return s.runLecture(name, s.answerer(nil, -1))
}

func (s *featureState) iTakeTheQuizMissing(name, missed string) error {
	wrong := map[string]bool{}
	for _, text := range strings.Split(missed, ",") {
		wrong[strings.TrimSpace(text)] = true
	}
	return s.runLecture(name, s.answerer(wrong, -1))
}

func (s *featureState) iQuitTheQuizAfter(name string, answers int) error {
	return s.runLecture(name, s.answerer(nil, answers))
}

// iTakeTheQuizOnAllLectures pools every lecture in the directory.
func (s *featureState) iTakeTheQuizOnAllLectures() error {
	bank, err := question.OpenBank(s.questionsDir)
	if err != nil {
		return err
	}
	sets, skipped, err := bank.LoadAll()
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		return fmt.Errorf("unexpected skipped lectures: %v", skipped)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	return s.runQuestions(question.Pool(sets, rng), s.answerer(nil, -1), rng)
}

// iRunCommand executes a CLI command against the scenario questions directory.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "studyquiz" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	args = append([]string{args[0], "--dir", s.questionsDir}, args[1:]...)
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) runLecture(name string, answer func(session.Prompt) (int, error)) error {
	bank, err := question.OpenBank(s.questionsDir)
	if err != nil {
		return err
	}
	set, err := bank.Load(name)
	if err != nil {
		return err
	}
	return s.runQuestions(set.Questions, answer, rand.New(rand.NewPCG(3, 4)))
}

func (s *featureState) runQuestions(questions []question.Question, answer func(session.Prompt) (int, error), rng *rand.Rand) error {
	s.presenter = &testutil.ScriptedPresenter{Answer: answer}
	controller := &session.Controller{Presenter: s.presenter, Rand: rng}
	result, err := controller.Run(context.Background(), questions)
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	s.result = result
	return nil
}

// answerer answers by looking up each prompt body in the fixture lectures.
// Bodies in wrong get an incorrect option; quitAfter >= 0 quits once that many
// questions were answered.
func (s *featureState) answerer(wrong map[string]bool, quitAfter int) func(session.Prompt) (int, error) {
	answered := 0
	return func(prompt session.Prompt) (int, error) {
		if quitAfter >= 0 && answered >= quitAfter {
			return 0, session.ErrQuit
		}
		answered++
		correct, ok := s.correctAnswer(prompt.Body)
		if !ok {
			return 0, fmt.Errorf("unknown question %q", prompt.Body)
		}
		if wrong[prompt.Body] {
			return (correct + 1) % question.OptionCount, nil
		}
		return correct, nil
	}
}

func (s *featureState) correctAnswer(text string) (int, bool) {
	for _, lecture := range s.lectures {
		for _, q := range lecture.Questions {
			if q.Question == text {
				return q.CorrectAnswer, true
			}
		}
	}
	return 0, false
}
