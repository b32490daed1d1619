package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig supplies defaults for the startup flags. Flags given on the
// command line win over the file.
type fileConfig struct {
	Episode    *int    `yaml:"episode"`
	Level      *int    `yaml:"level"`
	Difficulty *string `yaml:"difficulty"`
	Debug      *bool   `yaml:"debug"`
	LevelDir   *string `yaml:"level_dir"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply writes the file's values into any flag target the command line left
// untouched. setFlags holds the names reported by flag.Visit.
func (c *fileConfig) apply(setFlags map[string]bool, episode, level *int, difficulty *string, debug *bool, levelDir *string) {
	if c.Episode != nil && !setFlags["episode"] {
		*episode = *c.Episode
	}
	if c.Level != nil && !setFlags["level"] {
		*level = *c.Level
	}
	if c.Difficulty != nil && !setFlags["difficulty"] {
		*difficulty = *c.Difficulty
	}
	if c.Debug != nil && !setFlags["debug"] {
		*debug = *c.Debug
	}
	if c.LevelDir != nil && !setFlags["levels"] {
		*levelDir = *c.LevelDir
	}
}
