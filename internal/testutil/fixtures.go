package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// LectureQuestion is a fixture question in the lecture file shape.
type LectureQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Lecture is a fixture lecture file.
type Lecture struct {
	Lecture   string            `json:"lecture"`
	Topic     string            `json:"topic,omitempty"`
	Questions []LectureQuestion `json:"questions"`
}

// NumberedLecture builds a lecture with count questions named "<title> Q<n>".
// The correct answer of question n is option n mod 4.
func NumberedLecture(title string, count int) Lecture {
	lecture := Lecture{Lecture: title, Topic: "Fixtures"}
	for i := 0; i < count; i++ {
		lecture.Questions = append(lecture.Questions, LectureQuestion{
			Question:      fmt.Sprintf("%s Q%d", title, i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
			Explanation:   fmt.Sprintf("Option %d is correct.", i%4+1),
		})
	}
	return lecture
}

// WriteLecture writes a fixture lecture as dir/name.json and returns its path.
func WriteLecture(t testing.TB, dir, name string, lecture Lecture) string {
	t.Helper()
	data, err := json.MarshalIndent(lecture, "", "  ")
	if err != nil {
		t.Fatalf("marshal lecture %s: %v", name, err)
	}
	return WriteFile(t, dir, name+".json", string(data))
}

// WriteFile writes raw content to dir/name and returns its path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
