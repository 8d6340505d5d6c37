package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a lecture file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("lecture validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSet trims whitespace, validates, and converts a decoded lecture file.
func NormalizeSet(raw setFile) (QuestionSet, error) {
	collector := &issueCollector{}
	set := QuestionSet{
		Lecture: strings.TrimSpace(raw.Lecture),
		Topic:   strings.TrimSpace(raw.Topic),
	}
	if set.Lecture == "" {
		collector.add("lecture", "is required")
	}
	if len(raw.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	set.Questions = make([]Question, 0, len(raw.Questions))
	for i, entry := range raw.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q := Question{
			Text:        strings.TrimSpace(entry.Question),
			Options:     normalizeStringSlice(entry.Options),
			Explanation: strings.TrimSpace(entry.Explanation),
			Lecture:     set.Lecture,
		}
		if q.Text == "" {
			collector.add(prefix+".question", "is required")
		}

		if len(q.Options) != OptionCount {
			collector.add(prefix+".options", fmt.Sprintf("must include exactly %d entries, got %d", OptionCount, len(q.Options)))
		}
		for optionIndex, option := range q.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}

		if entry.CorrectAnswer == nil {
			collector.add(prefix+".correct_answer", "is required")
		} else {
			q.Correct = *entry.CorrectAnswer
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				collector.add(prefix+".correct_answer", fmt.Sprintf("index %d out of range [0,%d]", q.Correct, max(len(q.Options)-1, 0)))
			}
		}
		set.Questions = append(set.Questions, q)
	}

	if err := collector.result(); err != nil {
		return QuestionSet{}, err
	}
	return set, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
