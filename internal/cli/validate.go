package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"studyquiz/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addCommonFlags(fs)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		_, bank, ok := openBank(common, stderr)
		if !ok {
			return ExitError
		}
		sets, skipped, err := bank.LoadAll()
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		for _, set := range sets {
			fmt.Fprintf(stdout, "%s: OK (%d questions)\n", set.Name, len(set.Questions))
		}
		if len(skipped) == 0 {
			fmt.Fprintln(stdout, "Questions OK")
			return ExitOK
		}
		for _, skip := range skipped {
			fmt.Fprintf(stderr, "%s: invalid\n", skip.Lecture)
			var validationErr *question.ValidationError
			if errors.As(skip.Err, &validationErr) {
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
				continue
			}
			fmt.Fprintf(stderr, "  %v\n", skip.Err)
		}
		return ExitError
	}
}
