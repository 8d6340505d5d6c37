package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvQuestionsDir = "STUDYQUIZ_QUESTIONS_DIR"
	EnvUI           = "STUDYQUIZ_UI"
	EnvNoColor      = "NO_COLOR"
)

// LoadDotEnv loads variables from a .env file without overriding ones already
// set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables using lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvQuestionsDir); ok && strings.TrimSpace(value) != "" {
		cfg.QuestionsDir = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvUI); ok && strings.TrimSpace(value) != "" {
		cfg.UI = strings.ToLower(strings.TrimSpace(value))
	}
	if value, ok := lookup(EnvNoColor); ok && value != "" {
		cfg.NoColor = true
	}
}
