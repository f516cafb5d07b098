package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const projectConfigName = ".codepack.yml"

var (
	// ErrProjectConfigNotFound means no .codepack.yml exists in the base
	// directory. Callers fall back to flags and defaults.
	ErrProjectConfigNotFound = errors.New("project config not found")
	// ErrProjectConfigParsing means .codepack.yml exists but is malformed.
	ErrProjectConfigParsing = errors.New("project config parsing failed")
)

// ProjectConfig holds optional per-project defaults read from .codepack.yml
// in the base directory. Explicit CLI flags take precedence over every field.
type ProjectConfig struct {
	// Config names the rules config to use for this project.
	Config string `yaml:"config"`
	// Output is the document destination path.
	Output string `yaml:"output"`
	// Structure embeds the project tree into the document.
	Structure bool `yaml:"structure"`
	// Manifest overrides the manifest destination path.
	Manifest string `yaml:"manifest"`
}

// LoadProjectConfig reads .codepack.yml from baseDir.
func LoadProjectConfig(baseDir string) (*ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, projectConfigName))
	if err != nil {
		if os.IsNotExist(err) {
			return &ProjectConfig{}, ErrProjectConfigNotFound
		}
		return nil, fmt.Errorf("read %s: %w", projectConfigName, err)
	}

	pc := &ProjectConfig{}
	if err := yaml.Unmarshal(data, pc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProjectConfigParsing, err)
	}
	return pc, nil
}
