package cli

import (
	"flag"
	"fmt"
	"io"
)

func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Failed to load lectures: %v\n", err)
			return ExitError
		}
		if len(sets) == 0 && len(skipped) == 0 {
			fmt.Fprintf(stdout, "No lecture quiz files found in %s.\n", bank.Dir)
			return ExitOK
		}
		for _, set := range sets {
			line := fmt.Sprintf("%-20s %3d questions  %s", set.Name, len(set.Questions), set.Lecture)
			if set.Topic != "" {
				line += " (" + set.Topic + ")"
			}
			fmt.Fprintln(stdout, line)
		}
		for _, skip := range skipped {
			fmt.Fprintf(stdout, "%-20s invalid (run \"studyquiz validate\")\n", skip.Lecture)
		}
		return ExitOK
	}
}
