package config

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// DefaultQuestionsDir is used when no questions_dir is configured.
const DefaultQuestionsDir = "questions"

// Config holds the resolved application settings.
type Config struct {
	QuestionsDir   string
	UI             string
	NoColor        bool
	ShuffleOptions bool
	Grading        Grading
}

// Grading holds the minimum percentage for each verdict band.
type Grading struct {
	Excellent float64
	Great     float64
	Good      float64
}

// fileConfig is the YAML schema of .studyquiz.yml.
type fileConfig struct {
	QuestionsDir   string       `yaml:"questions_dir"`
	UI             string       `yaml:"ui"`
	NoColor        bool         `yaml:"no_color"`
	ShuffleOptions bool         `yaml:"shuffle_options"`
	Grading        *fileGrading `yaml:"grading"`
}

type fileGrading struct {
	Excellent *float64 `yaml:"excellent"`
	Great     *float64 `yaml:"great"`
	Good      *float64 `yaml:"good"`
}

// Default returns the settings used without a config file.
func Default() Config {
	return Config{
		QuestionsDir: DefaultQuestionsDir,
		UI:           UIAuto,
		Grading:      Grading{Excellent: 90, Great: 75, Good: 60},
	}
}
