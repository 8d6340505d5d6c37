package config

import (
	"errors"
	"os"
	"path/filepath"
)

// ResolveOptions controls where settings are read from.
type ResolveOptions struct {
	// ConfigPath is an explicit config file. When empty the file is searched
	// for upward from WorkDir and is optional.
	ConfigPath string
	WorkDir    string
	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

// Resolve loads .env, the config file, and environment overrides, in that
// order. It returns the config and the path of the file used, if any.
func Resolve(opts ResolveOptions) (Config, string, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, "", err
		}
		workDir = wd
	}
	if err := LoadDotEnv(filepath.Join(workDir, ".env")); err != nil {
		return Config{}, "", err
	}
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	path := opts.ConfigPath
	if path == "" {
		found, err := FindConfigPath(workDir)
		switch {
		case err == nil:
			path = found
		case errors.Is(err, ErrNotFound):
		default:
			return Config{}, "", err
		}
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, "", err
		}
		cfg = loaded
	} else {
		Normalize(&cfg, workDir)
	}

	ApplyEnv(&cfg, lookup)
	Normalize(&cfg, workDir)
	if err := Validate(cfg); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
