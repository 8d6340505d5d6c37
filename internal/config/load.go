package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a config file. A relative
// questions_dir is resolved against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	file, err := parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg := fromFile(file)
	Normalize(&cfg, filepath.Dir(path))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parse(data []byte) (fileConfig, error) {
	var file fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return file, nil
}

func fromFile(file fileConfig) Config {
	cfg := Default()
	cfg.QuestionsDir = file.QuestionsDir
	cfg.UI = file.UI
	cfg.NoColor = file.NoColor
	cfg.ShuffleOptions = file.ShuffleOptions
	if file.Grading != nil {
		if file.Grading.Excellent != nil {
			cfg.Grading.Excellent = *file.Grading.Excellent
		}
		if file.Grading.Great != nil {
			cfg.Grading.Great = *file.Grading.Great
		}
		if file.Grading.Good != nil {
			cfg.Grading.Good = *file.Grading.Good
		}
	}
	return cfg
}
