package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSet reads, parses, and validates a lecture file. Keys outside the
// lecture schema are ignored.
func LoadSet(path string) (QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return QuestionSet{}, &NotFoundError{Lecture: LectureName(path), Dir: filepath.Dir(path)}
		}
		return QuestionSet{}, fmt.Errorf("read lecture file: %w", err)
	}
	raw, err := parseSet(data, path)
	if err != nil {
		return QuestionSet{}, &ParseError{Path: path, Err: err}
	}
	set, err := NormalizeSet(raw)
	if err != nil {
		return QuestionSet{}, &ParseError{Path: path, Err: err}
	}
	set.Name = LectureName(path)
	set.Path = path
	return set, nil
}

// LectureName returns the lecture name for a file path (the file stem).
func LectureName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func parseSet(data []byte, path string) (setFile, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONSet(data)
	}
	return parseYAMLSet(data)
}

func parseJSONSet(data []byte) (setFile, error) {
	var raw setFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return setFile{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return setFile{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return setFile{}, fmt.Errorf("parse json: %w", err)
	}
	return raw, nil
}

func parseYAMLSet(data []byte) (setFile, error) {
	var raw setFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return setFile{}, fmt.Errorf("parse yaml: empty document")
		}
		return setFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return setFile{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return setFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	return raw, nil
}
