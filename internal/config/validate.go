package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		add("ui", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI))
	}

	thresholds := []struct {
		field string
		value float64
	}{
		{"grading.excellent", cfg.Grading.Excellent},
		{"grading.great", cfg.Grading.Great},
		{"grading.good", cfg.Grading.Good},
	}
	for _, threshold := range thresholds {
		if threshold.value < 0 || threshold.value > 100 {
			add(threshold.field, fmt.Sprintf("must be between 0 and 100, got %v", threshold.value))
		}
	}
	if cfg.Grading.Excellent < cfg.Grading.Great || cfg.Grading.Great < cfg.Grading.Good {
		add("grading", "thresholds must satisfy excellent >= great >= good")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
