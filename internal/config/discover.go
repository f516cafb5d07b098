package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrRulesConfigNotFound means no rules config could be resolved for a name.
var ErrRulesConfigNotFound = errors.New("rules config not found")

// FindRulesConfig resolves a config name to a file path. A name that is
// already a path to an existing file is used directly. Otherwise the name is
// expanded to "<name>_extract.config" unless it already carries a .config
// suffix, and searched for in configDir first, then the working directory.
func FindRulesConfig(name, configDir string) (string, error) {
	if fi, err := os.Stat(name); err == nil && fi.Mode().IsRegular() {
		return name, nil
	}

	filename := name
	switch {
	case strings.HasSuffix(name, ".config"):
		// Use as given.
	default:
		filename = name + "_extract.config"
	}

	candidates := []string{
		filepath.Join(configDir, filename),
		filename,
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && fi.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %s and the working directory)", ErrRulesConfigNotFound, name, configDir)
}
