package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"studyquiz/internal/config"
	"studyquiz/internal/question"
)

// commonFlags are the flags every command accepts.
type commonFlags struct {
	dir        *string
	configPath *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		dir:        fs.String("dir", "", "Questions directory (default: questions_dir from config, or ./questions)"),
		configPath: fs.String("config", "", "Path to config file (default: search for "+config.FileName+")"),
	}
}

// resolve loads settings and applies the --dir override.
func (f commonFlags) resolve() (config.Config, string, error) {
	cfg, path, err := config.Resolve(config.ResolveOptions{ConfigPath: *f.configPath})
	if err != nil {
		return config.Config{}, "", err
	}
	if dir := strings.TrimSpace(*f.dir); dir != "" {
		cfg.QuestionsDir = dir
	}
	return cfg, path, nil
}

// parseFlags parses args and reports the exit code to use when parsing fails.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// openBank loads settings and opens the questions directory, reporting failures.
func openBank(flags commonFlags, stderr io.Writer) (config.Config, *question.Bank, bool) {
	cfg, _, err := flags.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return config.Config{}, nil, false
	}
	bank, err := question.OpenBank(cfg.QuestionsDir)
	if err != nil {
		fmt.Fprintf(stderr, "Questions directory unavailable: %v\n", err)
		return config.Config{}, nil, false
	}
	return cfg, bank, true
}
