// Package rules holds the declarative file-selection rule model and its
// configuration loader. A Model is built once per run from an INI-style
// config document and consumed by the selector package.
package rules

import "strings"

// Reserved section names that never map to a directory under the base.
const (
	SectionGlobal        = "global"
	SectionSpecificFiles = "specific_files"
)

// Exclusions is a pair of excluded directory entries and excluded file
// patterns. The global instance is applied as a baseline to every section.
type Exclusions struct {
	Dirs  []string
	Files PatternList
}

// Section maps one subdirectory of the base directory to an inclusion policy.
// ExcludedDirs and ExcludedFiles already contain the global entries, in
// global-first order.
type Section struct {
	Name           string
	Extensions     []string
	IncludeSubdirs bool
	ExcludedDirs   []string
	ExcludedFiles  PatternList
}

// MatchesExtension reports whether name ends with one of the section's
// extensions. Extensions carry a leading dot after loading.
func (s *Section) MatchesExtension(name string) bool {
	for _, ext := range s.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Model is the full rule set for one run: directory sections in declared
// order, the global exclusion baseline, and explicitly named files.
type Model struct {
	Sections      []Section
	Global        Exclusions
	SpecificFiles []string
}
