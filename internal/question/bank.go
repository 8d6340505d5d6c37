package question

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Bank is a directory of lecture files.
type Bank struct {
	Dir string
}

// SkippedFile records a lecture file that could not be loaded.
type SkippedFile struct {
	Lecture string
	Err     error
}

// OpenBank checks that dir exists and is a directory.
func OpenBank(dir string) (*Bank, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open questions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("questions path %q is not a directory", dir)
	}
	return &Bank{Dir: dir}, nil
}

// Lectures returns the sorted lecture names available in the bank.
func (bank *Bank) Lectures() ([]string, error) {
	paths, err := bank.lecturePaths()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a single lecture by name.
func (bank *Bank) Load(name string) (QuestionSet, error) {
	paths, err := bank.lecturePaths()
	if err != nil {
		return QuestionSet{}, err
	}
	path, ok := paths[name]
	if !ok {
		return QuestionSet{}, &NotFoundError{Lecture: name, Dir: bank.Dir}
	}
	return LoadSet(path)
}

// LoadAll reads every lecture in the bank. Files that fail to parse are skipped
// and returned so the caller can report them.
func (bank *Bank) LoadAll() ([]QuestionSet, []SkippedFile, error) {
	names, err := bank.Lectures()
	if err != nil {
		return nil, nil, err
	}
	sets := make([]QuestionSet, 0, len(names))
	var skipped []SkippedFile
	for _, name := range names {
		set, err := bank.Load(name)
		if err != nil {
			var parseErr *ParseError
			var notFound *NotFoundError
			if errors.As(err, &parseErr) || errors.As(err, &notFound) {
				skipped = append(skipped, SkippedFile{Lecture: name, Err: err})
				continue
			}
			return nil, nil, err
		}
		sets = append(sets, set)
	}
	return sets, skipped, nil
}

// lecturePaths maps lecture names to file paths. When two files share a stem
// the first in directory order wins.
func (bank *Bank) lecturePaths() (map[string]string, error) {
	entries, err := os.ReadDir(bank.Dir)
	if err != nil {
		return nil, fmt.Errorf("read questions directory: %w", err)
	}
	paths := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isLectureFile(entry.Name()) {
			continue
		}
		name := LectureName(entry.Name())
		if _, exists := paths[name]; exists {
			continue
		}
		paths[name] = filepath.Join(bank.Dir, entry.Name())
	}
	return paths, nil
}

func isLectureFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yml", ".yaml":
		return true
	default:
		return false
	}
}

// Pool concatenates the questions of every set and shuffles the result.
// A nil rng uses the package-level source.
func Pool(sets []QuestionSet, rng *rand.Rand) []Question {
	total := 0
	for _, set := range sets {
		total += len(set.Questions)
	}
	pool := make([]Question, 0, total)
	for _, set := range sets {
		pool = append(pool, set.Questions...)
	}
	Shuffle(pool, rng)
	return pool
}

// Shuffle permutes questions in place.
func Shuffle(questions []Question, rng *rand.Rand) {
	swap := func(i, j int) { questions[i], questions[j] = questions[j], questions[i] }
	if rng == nil {
		rand.Shuffle(len(questions), swap)
		return
	}
	rng.Shuffle(len(questions), swap)
}
