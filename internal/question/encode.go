package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EncodeSet writes a set in the lecture JSON file shape with two-space indentation.
func EncodeSet(w io.Writer, set QuestionSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(toFile(set)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteSet serializes a set to path, choosing JSON or YAML by file extension.
func WriteSet(path string, set QuestionSet) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(toFile(set)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		if err := EncodeSet(&buf, set); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write lecture file: %w", err)
	}
	return nil
}

func toFile(set QuestionSet) setFile {
	out := setFile{
		Lecture:   set.Lecture,
		Topic:     set.Topic,
		Questions: make([]questionFile, 0, len(set.Questions)),
	}
	for _, q := range set.Questions {
		correct := q.Correct
		out.Questions = append(out.Questions, questionFile{
			Question:      q.Text,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: &correct,
			Explanation:   q.Explanation,
		})
	}
	return out
}
