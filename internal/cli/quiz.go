package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"studyquiz/internal/question"
	"studyquiz/internal/report"
	"studyquiz/internal/session"
	"studyquiz/internal/ui/live"
	"studyquiz/internal/ui/plain"
)

// quizInput allows tests to override stdin for quiz prompts.
var quizInput io.Reader = os.Stdin

// newPresenter builds the prompt presenter for the chosen UI mode.
var newPresenter = func(decision uiModeDecision, in io.Reader, out io.Writer, noColor bool) session.Presenter {
	if decision.useLive {
		return live.NewPresenter(in, out, live.Options{NoColor: noColor})
	}
	return plain.NewPresenter(in, out)
}

const (
	allLecturesLabel = "All lectures"
	quitLabel        = "Quit"
)

func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addCommonFlags(fs)
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default from config)")
		noColorFlag := fs.Bool("no-color", false, "Disable colored output")
		shuffleOptions := fs.Bool("shuffle-options", false, "Shuffle answer options of each question")
		seed := fs.Uint64("seed", 0, "Random seed for question order (0 picks one at random)")
		verbose := fs.Bool("verbose", false, "Print diagnostic output to stderr")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, bank, ok := openBank(common, stderr)
		if !ok {
			return ExitError
		}
		if *uiMode != "" {
			cfg.UI = *uiMode
		}
		cfg.NoColor = cfg.NoColor || *noColorFlag
		cfg.ShuffleOptions = cfg.ShuffleOptions || *shuffleOptions
		logger := newVerboseLogger(*verbose, stderr, cfg.NoColor)
		logger.logf(styleInfo, "questions directory: %s", bank.Dir)

		decision, err := resolveUIMode(cfg.UI, quizInput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		logger.logf(styleInfo, "ui mode: live=%v shuffle_options=%v", decision.useLive, cfg.ShuffleOptions)
		noColor := cfg.NoColor || !decision.useLive

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		rng := newRand(*seed)
		presenter := newPresenter(decision, quizInput, stdout, noColor)
		q := &quizRun{
			bank:      bank,
			presenter: presenter,
			stdout:    stdout,
			stderr:    stderr,
			logger:    logger,
			rng:       rng,
		}

		fmt.Fprintln(stdout, strings.Repeat("=", 60))
		fmt.Fprintln(stdout, "Study Quiz")
		fmt.Fprintln(stdout, strings.Repeat("=", 60))

		questions, code, done := q.selectQuestions(ctx)
		if done {
			return code
		}

		observers := session.Observers{
			live.NewFeedback(stdout, live.Options{NoColor: noColor}),
			verboseObserver{logger: logger},
		}
		controller := &session.Controller{
			Presenter:      presenter,
			Observer:       observers,
			Rand:           rng,
			ShuffleOptions: cfg.ShuffleOptions,
		}
		result, err := controller.Run(ctx, questions)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		logger.logf(styleMetrics, "session %s: answered=%d correct=%d quit=%v", result.ID, result.Total, result.CorrectCount, result.Quit)

		thresholds := report.Thresholds{
			Excellent: cfg.Grading.Excellent,
			Great:     cfg.Grading.Great,
			Good:      cfg.Grading.Good,
		}
		report.RenderSummary(stdout, report.Summarize(result, thresholds), noColor)
		if err := report.Review(ctx, presenter, stdout, result.WrongAnswers, noColor); err != nil {
			fmt.Fprintf(stderr, "Review failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// quizRun holds the collaborators of one quiz command invocation.
type quizRun struct {
	bank      *question.Bank
	presenter session.Presenter
	stdout    io.Writer
	stderr    io.Writer
	logger    verboseLogger
	rng       *rand.Rand
}

// selectQuestions asks for a lecture or all lectures until a non-empty
// question list is loaded. done reports that the command should exit with code.
func (q *quizRun) selectQuestions(ctx context.Context) ([]question.Question, int, bool) {
	for {
		lectures, err := q.bank.Lectures()
		if err != nil {
			fmt.Fprintf(q.stderr, "Failed to list lectures: %v\n", err)
			return nil, ExitError, true
		}
		if len(lectures) == 0 {
			fmt.Fprintf(q.stdout, "\nNo lecture quiz files found in %s.\n", q.bank.Dir)
			fmt.Fprintln(q.stdout, "Please add JSON files with quiz questions first.")
			return nil, ExitOK, true
		}
		q.logger.logf(styleInfo, "found %d lecture files", len(lectures))

		options := append(append([]string(nil), lectures...), allLecturesLabel, quitLabel)
		choice, err := q.presenter.Choose(ctx, session.Prompt{
			Title:   "Available lectures",
			Body:    "Select a lecture to study.",
			Options: options,
			Label:   "Lecture",
		})
		if err != nil {
			if session.IsQuit(err) {
				fmt.Fprintln(q.stdout, "\nExiting...")
				return nil, ExitOK, true
			}
			fmt.Fprintf(q.stderr, "Selection failed: %v\n", err)
			return nil, ExitError, true
		}

		switch {
		case choice == len(lectures)+1:
			fmt.Fprintln(q.stdout, "\nExiting...")
			return nil, ExitOK, true
		case choice == len(lectures):
			fmt.Fprintln(q.stdout, "\nLoading questions from all lectures...")
			if questions := q.loadAll(); len(questions) > 0 {
				return questions, ExitOK, false
			}
			fmt.Fprintln(q.stdout, "No questions could be loaded. Choose another option.")
		case choice < 0 || choice > len(lectures)+1:
			fmt.Fprintf(q.stderr, "Selection failed: option %d out of range\n", choice+1)
			return nil, ExitError, true
		default:
			name := lectures[choice]
			fmt.Fprintf(q.stdout, "\nLoading questions from: %s\n", name)
			set, err := q.bank.Load(name)
			if err != nil {
				q.reportLoadError(name, err)
				continue
			}
			q.logger.logf(styleInfo, "loaded %s: %d questions", set.Path, len(set.Questions))
			return set.Questions, ExitOK, false
		}
	}
}

// loadAll pools every loadable lecture, reporting skipped files.
func (q *quizRun) loadAll() []question.Question {
	sets, skipped, err := q.bank.LoadAll()
	if err != nil {
		fmt.Fprintf(q.stderr, "Failed to load lectures: %v\n", err)
		return nil
	}
	for _, skip := range skipped {
		q.reportLoadError(skip.Lecture, skip.Err)
	}
	pool := question.Pool(sets, q.rng)
	q.logger.logf(styleMetrics, "pooled %d questions from %d lectures (%d skipped)", len(pool), len(sets), len(skipped))
	return pool
}

// reportLoadError prints a recoverable lecture load failure.
func (q *quizRun) reportLoadError(name string, err error) {
	var notFound *question.NotFoundError
	var parseErr *question.ParseError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(q.stderr, "Error: %v\n", notFound)
	case errors.As(err, &parseErr):
		fmt.Fprintf(q.stderr, "Error: invalid lecture file %s, skipping.\n  %v\n", parseErr.Path, parseErr.Err)
	default:
		fmt.Fprintf(q.stderr, "Error loading %s: %v\n", name, err)
	}
	q.logger.logf(styleError, "skipped %s", name)
}

// newRand returns a seeded source, or a random one when seed is 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
