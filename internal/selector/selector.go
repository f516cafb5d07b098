// Package selector evaluates a rules.Model against a filesystem tree and
// produces the ordered set of absolute file paths satisfying the rules. Each
// call is a pure function of (base directory, model); there is no shared
// state between runs.
package selector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/martens/codepack/internal/rules"
)

var (
	// ErrBaseDir indicates the base directory is missing or not a directory.
	ErrBaseDir = errors.New("base directory not found")
	// ErrEmptySelection indicates no files matched any rule. The Result
	// returned alongside it still carries the accumulated warnings.
	ErrEmptySelection = errors.New("no files matched any rule")
)

// Warning reasons for skipped entries. None of them interrupts a run.
const (
	WarnMissingSectionDir    = "section directory does not exist"
	WarnMissingSpecificFile  = "specific file not found"
	WarnExcludedSpecificFile = "specific file matches a global exclusion"
)

// Warning records one non-fatal skip during selection.
type Warning struct {
	Reason string
	Path   string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Reason, w.Path)
}

// Result is the outcome of one selection run: absolute file paths in the
// order the walk yielded them, plus warnings for every skipped entry.
type Result struct {
	Files    []string
	Warnings []Warning
}

func (r *Result) warn(reason, path string) {
	r.Warnings = append(r.Warnings, Warning{Reason: reason, Path: path})
}

// Select walks baseDir according to the model. Sections are processed in
// declared order, then specific files. A missing section directory, a missing
// specific file, or a globally excluded specific file produce warnings and
// processing continues. ErrBaseDir is returned if baseDir does not exist or
// is not a directory, ErrEmptySelection (together with the Result) if nothing
// matched.
func Select(baseDir string, model *rules.Model) (*Result, error) {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBaseDir, baseDir)
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}

	res := &Result{}
	seen := make(map[string]struct{})

	for i := range model.Sections {
		sec := &model.Sections[i]
		dirPath := filepath.Join(absBase, sec.Name)
		if fi, err := os.Stat(dirPath); err != nil || !fi.IsDir() {
			res.warn(WarnMissingSectionDir, dirPath)
			continue
		}

		var files []string
		if sec.IncludeSubdirs {
			files, err = collectRecursive(dirPath, sec)
		} else {
			files, err = collectFlat(dirPath, sec)
		}
		if err != nil {
			return nil, fmt.Errorf("walk section %q: %w", sec.Name, err)
		}
		for _, f := range files {
			res.Files = append(res.Files, f)
			seen[f] = struct{}{}
		}
	}

	for _, rel := range model.SpecificFiles {
		full := filepath.Join(absBase, rel)
		fi, err := os.Stat(full)
		if err != nil || !fi.Mode().IsRegular() {
			res.warn(WarnMissingSpecificFile, rel)
			continue
		}
		if model.Global.Files.Matches(filepath.Base(full)) {
			res.warn(WarnExcludedSpecificFile, rel)
			continue
		}
		if _, ok := seen[full]; ok {
			continue
		}
		res.Files = append(res.Files, full)
		seen[full] = struct{}{}
	}

	if len(res.Files) == 0 {
		return res, ErrEmptySelection
	}
	return res, nil
}

// collectRecursive walks the full tree under dirPath, pruning excluded
// directory subtrees and filtering files by extension and name patterns.
func collectRecursive(dirPath string, sec *rules.Section) ([]string, error) {
	excluded := resolveExcludedDirs(dirPath, sec.ExcludedDirs)

	var files []string
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if underAny(path, excluded) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		name := info.Name()
		if !sec.MatchesExtension(name) || sec.ExcludedFiles.Matches(name) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// collectFlat enumerates only direct regular-file children of dirPath.
// Directory exclusions are irrelevant because no descent happens.
func collectFlat(dirPath string, sec *rules.Section) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !sec.MatchesExtension(name) || sec.ExcludedFiles.Matches(name) {
			continue
		}
		files = append(files, filepath.Join(dirPath, name))
	}
	return files, nil
}

// resolveExcludedDirs turns the section's excluded-dir entries into absolute
// anchors. Relative entries resolve against the section directory, not the
// walk root or the process working directory.
func resolveExcludedDirs(dirPath string, dirs []string) []string {
	anchors := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if !filepath.IsAbs(d) {
			d = filepath.Join(dirPath, d)
		}
		anchors = append(anchors, filepath.Clean(d))
	}
	return anchors
}

// underAny reports whether path equals, or is a separator-bounded descendant
// of, any anchor. "/a/b" is under "/a/b" and "/a" but never under "/a/bc".
func underAny(path string, anchors []string) bool {
	for _, anchor := range anchors {
		if path == anchor || strings.HasPrefix(path, anchor+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
