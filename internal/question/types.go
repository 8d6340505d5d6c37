package question

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// QuestionSet is one lecture's questions plus metadata. It is not modified after load.
type QuestionSet struct {
	Name      string
	Path      string
	Lecture   string
	Topic     string
	Questions []Question
}

// Question is a single multiple-choice question.
type Question struct {
	Text        string
	Options     []string
	Correct     int
	Explanation string
	// Lecture is the title of the set the question was loaded from.
	Lecture string
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// Option returns the option text at index, or an empty string when out of range.
func (q Question) Option(index int) string {
	if index < 0 || index >= len(q.Options) {
		return ""
	}
	return q.Options[index]
}

// setFile is the on-disk schema of a lecture file.
type setFile struct {
	Lecture   string         `json:"lecture" yaml:"lecture"`
	Topic     string         `json:"topic,omitempty" yaml:"topic,omitempty"`
	Questions []questionFile `json:"questions" yaml:"questions"`
}

// questionFile uses a pointer for correct_answer so a missing field is not read as 0.
type questionFile struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer *int     `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}
