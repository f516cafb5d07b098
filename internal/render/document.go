// Package render turns a selection result into the final Markdown document,
// a plain-text manifest, and an optional project-structure tree. Rendering
// never aborts on a single unreadable file; it embeds an error notice and
// moves on.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DocumentOptions carries the optional parts of the document header.
type DocumentOptions struct {
	// Title overrides the default document title when non-empty.
	Title string
	// HeadSHA, when non-empty, is recorded as the commit the snapshot was
	// taken from.
	HeadSHA string
	// Structure, when non-empty, is embedded as a project-structure section
	// before the file contents.
	Structure string
	// Now supplies the generation timestamp; the zero value means time.Now.
	Now time.Time
}

// Document renders the selected files into one Markdown document. Files are
// ordered by their slash-normalized path relative to baseDir; each one gets a
// heading with that path and its raw content in a code fence tagged by
// extension.
func Document(files []string, baseDir string, opts DocumentOptions) string {
	title := opts.Title
	if title == "" {
		title = "Project Code Collection"
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("2006-01-02 15:04:05"))
	if opts.HeadSHA != "" {
		fmt.Fprintf(&b, "Commit: %s\n\n", opts.HeadSHA)
	}
	if opts.Structure != "" {
		b.WriteString(opts.Structure)
		b.WriteString("\n")
	}

	for _, rel := range RelativePaths(files, baseDir) {
		path := filepath.Join(baseDir, filepath.FromSlash(rel))
		fmt.Fprintf(&b, "## %s\n\n", rel)

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(&b, "Error reading %s: %v\n\n", path, err)
			continue
		}
		lang := LanguageForExtension(filepath.Ext(path))
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", lang, content)
	}
	return b.String()
}

// RelativePaths converts absolute file paths to slash-normalized paths
// relative to baseDir, sorted. This is the presentation order shared by the
// document and the manifest.
func RelativePaths(files []string, baseDir string) []string {
	rels := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(baseDir, f)
		if err != nil {
			rel = f
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	sort.Strings(rels)
	return rels
}
