package cli

import (
	"flag"
	"fmt"
	"io"

	"studyquiz/internal/question"
)

// runShuffle rewrites lecture files with every question's options shuffled.
func runShuffle(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		common := addCommonFlags(fs)
		seed := fs.Uint64("seed", 0, "Random seed (0 picks one at random)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		_, bank, ok := openBank(common, stderr)
		if !ok {
			return ExitError
		}
		names := fs.Args()
		if len(names) == 0 {
			all, err := bank.Lectures()
			if err != nil {
				fmt.Fprintf(stderr, "Failed to list lectures: %v\n", err)
				return ExitError
			}
			names = all
		}
		fmt.Fprintf(stdout, "Found %d lecture files to process\n", len(names))

		rng := newRand(*seed)
		code := ExitOK
		for _, name := range names {
			set, err := bank.Load(name)
			if err != nil {
				fmt.Fprintf(stderr, "Skipping %s: %v\n", name, err)
				code = ExitError
				continue
			}
			if err := question.WriteSet(set.Path, question.ShuffleSet(set, rng)); err != nil {
				fmt.Fprintf(stderr, "Failed to write %s: %v\n", set.Path, err)
				code = ExitError
				continue
			}
			fmt.Fprintf(stdout, "Shuffled answers in %s\n", set.Path)
		}
		if code == ExitOK {
			fmt.Fprintln(stdout, "Done! All answers have been shuffled.")
		}
		return code
	}
}
