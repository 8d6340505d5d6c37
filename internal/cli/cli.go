package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// defaultCommand runs when no command is given.
const defaultCommand = "quiz"

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || isFlagArg(args[0]) && !isHelpArg(args[0]) {
		return findCommand(defaultCommand).Run(args, stdout, stderr)
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func isFlagArg(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  studyquiz [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintf(w, "\nWith no command, %q runs.\n", defaultCommand)
	fmt.Fprintln(w, "Use \"studyquiz <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("quiz", "Take an interactive quiz", []string{
		"studyquiz quiz [--dir <path>] [--config <path>] [--ui auto|live|plain] [--no-color] [--shuffle-options] [--seed <n>] [--verbose]",
	}, runQuiz),
	command("list", "List lecture files and question counts", []string{
		"studyquiz list [--dir <path>] [--config <path>]",
	}, runList),
	command("validate", "Validate every lecture file", []string{
		"studyquiz validate [--dir <path>] [--config <path>]",
	}, runValidate),
	command("shuffle", "Shuffle answer options in lecture files", []string{
		"studyquiz shuffle [--dir <path>] [--config <path>] [--seed <n>] [lecture...]",
	}, runShuffle),
}
