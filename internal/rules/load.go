package rules

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrConfig indicates a missing, unreadable, or malformed rules config. It is
// fatal and aborts the run before any filesystem walk.
var ErrConfig = errors.New("invalid rules config")

// Load reads an INI-style rules config from path and builds the Model.
// Directory sections keep the order they appear in the file. Every section's
// effective exclusion lists start with the global entries, followed by the
// section's own.
func Load(path string) (*Model, error) {
	f, err := ini.LoadSources(ini.LoadOptions{AllowPythonMultilineValues: true}, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}

	m := &Model{}
	if g, err := f.GetSection(SectionGlobal); err == nil {
		m.Global.Dirs = ParseList(g.Key("excluded_dirs").String())
		m.Global.Files = toPatterns(ParseList(g.Key("excluded_files").String()))
	}

	for _, sec := range f.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection || name == SectionGlobal || name == SectionSpecificFiles {
			continue
		}
		s, err := loadSection(name, sec, m.Global)
		if err != nil {
			return nil, err
		}
		m.Sections = append(m.Sections, s)
	}

	if sp, err := f.GetSection(SectionSpecificFiles); err == nil {
		m.SpecificFiles = ParseList(sp.Key("files").String())
	}

	return m, nil
}

func loadSection(name string, sec *ini.Section, global Exclusions) (Section, error) {
	if !sec.HasKey("extensions") {
		return Section{}, fmt.Errorf("%w: section %q is missing the extensions key", ErrConfig, name)
	}

	exts := ParseList(sec.Key("extensions").String())
	for i, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			exts[i] = "." + ext
		}
	}

	includeSubdirs := true
	if sec.HasKey("include_subdirs") {
		v, err := sec.Key("include_subdirs").Bool()
		if err != nil {
			return Section{}, fmt.Errorf("%w: section %q: include_subdirs: %v", ErrConfig, name, err)
		}
		includeSubdirs = v
	}

	return Section{
		Name:           name,
		Extensions:     exts,
		IncludeSubdirs: includeSubdirs,
		ExcludedDirs:   append(slices.Clone(global.Dirs), ParseList(sec.Key("excluded_dirs").String())...),
		ExcludedFiles:  append(slices.Clone(global.Files), toPatterns(ParseList(sec.Key("excluded_files").String()))...),
	}, nil
}

func toPatterns(items []string) PatternList {
	if len(items) == 0 {
		return nil
	}
	patterns := make(PatternList, len(items))
	for i, item := range items {
		patterns[i] = Pattern(item)
	}
	return patterns
}
