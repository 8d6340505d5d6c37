package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

// TestLoadAppliesDefaults verifies an empty file yields defaults anchored at its directory.
func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.QuestionsDir != filepath.Join(dir, DefaultQuestionsDir) {
		t.Fatalf("unexpected questions dir %q", cfg.QuestionsDir)
	}
	if cfg.UI != UIAuto || cfg.Grading.Excellent != 90 || cfg.Grading.Good != 60 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestLoadReadsSettings verifies every key is parsed.
func TestLoadReadsSettings(t *testing.T) {
	dir := t.TempDir()
	payload := `questions_dir: banks
ui: Plain
no_color: true
shuffle_options: true
grading:
  excellent: 95
  great: 80
`
	cfg, err := Load(writeConfig(t, dir, payload))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.QuestionsDir != filepath.Join(dir, "banks") || cfg.UI != UIPlain || !cfg.NoColor || !cfg.ShuffleOptions {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Grading.Excellent != 95 || cfg.Grading.Great != 80 || cfg.Grading.Good != 60 {
		t.Fatalf("unexpected grading: %+v", cfg.Grading)
	}
}

// TestLoadRejectsUnknownKeys verifies strict YAML decoding.
func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := Load(writeConfig(t, t.TempDir(), "questions: x\n")); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

// TestValidateIssues verifies invalid settings are collected.
func TestValidateIssues(t *testing.T) {
	cfg := Default()
	cfg.UI = "fancy"
	cfg.Grading = Grading{Excellent: 50, Great: 70, Good: 120}
	err := Validate(cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	text := err.Error()
	for _, want := range []string{"ui:", "grading.good:", "excellent >= great >= good"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in %q", want, text)
		}
	}
}

// TestFindConfigPathWalksUp verifies the search climbs parent directories.
func TestFindConfigPathWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "ui: plain\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want, _ := filepath.EvalSymlinks(path)
	got, _ := filepath.EvalSymlinks(found)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestResolveWithoutConfig verifies defaults resolve against the working directory.
func TestResolveWithoutConfig(t *testing.T) {
	workDir := filepath.Join(t.TempDir(), "isolated")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, path, err := Resolve(ResolveOptions{WorkDir: workDir, Lookup: noEnv})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != "" {
		t.Skipf("found a config outside the temp dir: %s", path)
	}
	if cfg.QuestionsDir != filepath.Join(workDir, DefaultQuestionsDir) {
		t.Fatalf("unexpected questions dir %q", cfg.QuestionsDir)
	}
}

// TestResolveEnvOverrides verifies environment variables win over the file.
func TestResolveEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "questions_dir: banks\nui: live\n")
	env := map[string]string{EnvQuestionsDir: "/srv/questions", EnvUI: "PLAIN", EnvNoColor: "1"}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	cfg, used, err := Resolve(ResolveOptions{ConfigPath: path, WorkDir: dir, Lookup: lookup})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if used != path {
		t.Fatalf("expected config path %q, got %q", path, used)
	}
	if cfg.QuestionsDir != "/srv/questions" || cfg.UI != UIPlain || !cfg.NoColor {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestApplyEnvFromDotEnv verifies .env values are visible to the lookup.
func TestApplyEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvUI+"=plain\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv(EnvUI, "")
	os.Unsetenv(EnvUI)
	if err := LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	cfg := Default()
	ApplyEnv(&cfg, os.LookupEnv)
	if cfg.UI != UIPlain {
		t.Fatalf("expected ui from .env, got %q", cfg.UI)
	}
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}
