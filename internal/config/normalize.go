package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults, lowercases the UI mode, and anchors a relative
// questions directory at baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.QuestionsDir = strings.TrimSpace(cfg.QuestionsDir)
	if cfg.QuestionsDir == "" {
		cfg.QuestionsDir = DefaultQuestionsDir
	}
	if baseDir != "" && !filepath.IsAbs(cfg.QuestionsDir) {
		cfg.QuestionsDir = filepath.Join(baseDir, cfg.QuestionsDir)
	}
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
}
