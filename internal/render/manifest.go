package render

import "strings"

// Manifest lists the selected files' paths relative to baseDir, one per line,
// in the same order they appear in the document.
func Manifest(files []string, baseDir string) string {
	var b strings.Builder
	for _, rel := range RelativePaths(files, baseDir) {
		b.WriteString(rel)
		b.WriteByte('\n')
	}
	return b.String()
}
