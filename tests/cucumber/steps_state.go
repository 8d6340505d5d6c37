//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"

	"studyquiz/internal/session"
	"studyquiz/internal/testutil"
)

// featureState holds scenario state for quiz scenarios.
type featureState struct {
	questionsDir string
	lectures     map[string]testutil.Lecture
	presenter    *testutil.ScriptedPresenter
	result       session.Result
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	exitCode     int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a lecture "([^"]+)" with (\d+) questions$`, state.aLectureWithQuestions)
	ctx.Step(`^an invalid lecture file "([^"]+)"$`, state.anInvalidLectureFile)
	ctx.Step(`^I take the quiz on "([^"]+)" answering every question correctly$`, state.iTakeTheQuizCorrectly)
	ctx.Step(`^I take the quiz on "([^"]+)" missing "([^"]+)"$`, state.iTakeTheQuizMissing)
	ctx.Step(`^I quit the quiz on "([^"]+)" after (\d+) answers?$`, state.iQuitTheQuizAfter)
	ctx.Step(`^I take the quiz on all lectures$`, state.iTakeTheQuizOnAllLectures)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the score is (\d+) out of (\d+)$`, state.theScoreIs)
	ctx.Step(`^the missed questions are "([^"]*)"$`, state.theMissedQuestionsAre)
	ctx.Step(`^the session ended early$`, state.theSessionEndedEarly)
	ctx.Step(`^the session covered (\d+) distinct questions$`, state.theSessionCoveredDistinctQuestions)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
}

// reset creates a fresh questions directory before each scenario.
func (s *featureState) reset() error {
	s.cleanup()
	dir, err := os.MkdirTemp("", "studyquiz-feature-")
	if err != nil {
		return fmt.Errorf("create questions dir: %w", err)
	}
	s.questionsDir = dir
	s.lectures = map[string]testutil.Lecture{}
	s.presenter = nil
	s.result = session.Result{}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	return nil
}

// cleanup removes temporary files.
func (s *featureState) cleanup() {
	if s.questionsDir != "" {
		_ = os.RemoveAll(s.questionsDir)
		s.questionsDir = ""
	}
}
