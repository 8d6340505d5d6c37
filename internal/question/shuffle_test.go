package question

import (
	"math/rand/v2"
	"testing"
)

// TestShuffleOptionsTracksCorrectAnswer verifies the correct text follows the new index.
func TestShuffleOptionsTracksCorrectAnswer(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	q := Question{Text: "q", Options: []string{"w", "x", "y", "z"}, Correct: 2}
	for i := 0; i < 50; i++ {
		shuffled := ShuffleOptions(q, rng)
		if shuffled.CorrectOption() != "y" {
			t.Fatalf("expected correct option y, got %q (options %v, correct %d)", shuffled.CorrectOption(), shuffled.Options, shuffled.Correct)
		}
		if len(shuffled.Options) != len(q.Options) {
			t.Fatalf("expected %d options, got %d", len(q.Options), len(shuffled.Options))
		}
	}
	if q.Options[0] != "w" || q.Correct != 2 {
		t.Fatalf("expected original question to be unchanged, got %+v", q)
	}
}

// TestShuffleSetKeepsQuestions verifies set shuffling keeps question order and count.
func TestShuffleSetKeepsQuestions(t *testing.T) {
	set := QuestionSet{Lecture: "L", Questions: []Question{
		{Text: "a", Options: []string{"1", "2", "3", "4"}, Correct: 0},
		{Text: "b", Options: []string{"1", "2", "3", "4"}, Correct: 3},
	}}
	out := ShuffleSet(set, rand.New(rand.NewPCG(3, 5)))
	if len(out.Questions) != 2 || out.Questions[0].Text != "a" || out.Questions[1].Text != "b" {
		t.Fatalf("unexpected questions: %+v", out.Questions)
	}
	if out.Questions[1].CorrectOption() != "4" {
		t.Fatalf("expected correct option 4, got %q", out.Questions[1].CorrectOption())
	}
}
